//go:build board_pico_expander

package boards

// Selected is the single profile this build runs against. There is no
// untagged fallback on purpose: building without exactly one recognised
// board tag must fail here rather than ship a wrong pin table.
var Selected = PicoExpander(Config{})
