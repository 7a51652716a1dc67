package cpu

import (
	"strconv"

	"github.com/pkg/errors"

	"gohack/pkg/utils"
)

func errProgramTooLarge(n int) error {
	return errors.Errorf("program too large for ROM: %d words > %d", n, ROMSize)
}

// DecodeWord parses one line of 16 binary digits.
func DecodeWord(s string) (uint16, error) {
	if len(s) != 16 {
		return 0, errors.Errorf("DecodeWord %q: want 16 binary digits", s)
	}
	v, err := strconv.ParseUint(s, 2, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "DecodeWord %q", s)
	}
	return uint16(v), nil
}

// ParseHack decodes binary text lines. Blank lines and comments are skipped.
func ParseHack(raw []string) ([]uint16, error) {
	lines := utils.NumberLines(raw)
	words := make([]uint16, 0, len(lines))
	for _, l := range lines {
		w, err := DecodeWord(l.Text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", l.No)
		}
		words = append(words, w)
	}
	return words, nil
}

// LoadHackFile reads a .hack file into words.
func LoadHackFile(path string) ([]uint16, error) {
	raw, err := utils.ReadLines(path)
	if err != nil {
		return nil, err
	}
	words, err := ParseHack(raw)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if len(words) > ROMSize {
		return nil, errProgramTooLarge(len(words))
	}
	return words, nil
}
