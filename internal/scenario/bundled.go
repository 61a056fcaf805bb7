package scenario

// Bundled contains default scenario scripts, installed by `kwm config init`
// and always available as a fallback even before installation.
var Bundled = map[string]string{
	"three-wide": `name: three-wide
description: three windows side by side, then step focus left twice

steps:
  - command: insert_tiling
    label: a
  - command: insert_tiling
    label: b
  - command: insert_tiling
    label: c
  - command: focus_left
  - command: focus_left
`,
	"tabs-demo": `name: tabs-demo
description: a window joined by two tabbed siblings

steps:
  - command: insert_tiling
    label: main
  - command: toggle_spawn_mode
  - command: toggle_spawn_mode
  - command: insert_tiling
    label: tab-one
  - command: insert_tiling
    label: tab-two
`,
	"split-and-move": `name: split-and-move
description: build a vertical pair, then move the focused window to workspace 1

steps:
  - command: insert_tiling
    label: left
  - command: toggle_spawn_mode
  - command: insert_tiling
    label: below
  - command: move_focused_to_workspace
    target: 1
`,
}
