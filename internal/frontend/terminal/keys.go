package terminal

import "unicode"

// keyMap maps the QWERTY keyboard block 1-4/Q-R/A-F/Z-V onto the CHIP-8
// key pad layout:
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
var keyMap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// mapKey returns the key pad key for a keyboard character.
func mapKey(ch rune) (uint8, bool) {
	key, ok := keyMap[unicode.ToLower(ch)]
	return key, ok
}

// keyReleaser emulates key releases. Terminals only report key presses,
// a pressed key is released after a number of frames without repeat.
type keyReleaser struct {
	frames    int
	releaseAt [16]int // frame at which a pressed key gets released, 0 if not pressed
	frame     int
}

func newKeyReleaser(frames int) *keyReleaser {
	return &keyReleaser{frames: frames}
}

// press marks the key as pressed and returns true if it was not pressed before.
func (k *keyReleaser) press(key uint8) bool {
	wasPressed := k.releaseAt[key] != 0
	k.releaseAt[key] = k.frame + k.frames
	return !wasPressed
}

// advance moves to the next frame and calls release for all keys that are due.
func (k *keyReleaser) advance(release func(key uint8)) {
	k.frame++
	for key, at := range k.releaseAt {
		if at != 0 && at <= k.frame {
			k.releaseAt[key] = 0
			release(uint8(key))
		}
	}
}
