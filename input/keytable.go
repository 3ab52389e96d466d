package input

import "github.com/gdamore/tcell/v2"

// specialKeys maps terminal navigation keys to simulation keys
var specialKeys = map[tcell.Key]Key{
	tcell.KeyUp:    KeyUp,
	tcell.KeyDown:  KeyDown,
	tcell.KeyLeft:  KeyLeft,
	tcell.KeyRight: KeyRight,
	tcell.KeyEnter: KeyFire,
}

// runeKeys maps printable keys, both WASD and vi-style movement
var runeKeys = map[rune]Key{
	'w': KeyUp,
	'k': KeyUp,
	's': KeyDown,
	'j': KeyDown,
	'a': KeyLeft,
	'h': KeyLeft,
	'd': KeyRight,
	'l': KeyRight,
	' ': KeyFire,
	'z': KeyFire,
}

// FromEvent translates a terminal key event, ok is false for unbound keys
func FromEvent(ev *tcell.EventKey) (Key, bool) {
	return FromKey(ev.Key(), ev.Rune())
}

// FromKey translates a terminal key code and rune
func FromKey(key tcell.Key, r rune) (k Key, ok bool) {
	if key == tcell.KeyRune {
		k, ok = runeKeys[r]
		return k, ok
	}
	k, ok = specialKeys[key]
	return k, ok
}

// IsQuit reports whether the event requests leaving the game
func IsQuit(ev *tcell.EventKey) bool {
	return IsQuitKey(ev.Key(), ev.Rune())
}

// IsQuitKey reports whether a key code and rune request leaving the game
func IsQuitKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return true
	case tcell.KeyRune:
		return r == 'q'
	}
	return false
}
