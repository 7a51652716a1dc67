package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gohack/pkg/asm"
	"gohack/pkg/cpu"
	"gohack/pkg/translator"
	"gohack/pkg/utils"
)

// cyclesPerFrame runs the machine at roughly 3 MHz at 60fps.
const cyclesPerFrame = 50000

type Game struct {
	vm        *cpu.CPU
	screenImg *ebiten.Image // reused 512×256 canvas
}

func (g *Game) Update() error {
	g.vm.SetKey(pressedKey())

	for i := 0; i < cyclesPerFrame; i++ {
		if g.vm.Halted {
			break
		}
		g.vm.Step()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if err := g.vm.SaveScreenshot("hack_screen.png"); err != nil {
			log.Printf("screenshot failed: %v", err)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.screenImg == nil {
		g.screenImg = ebiten.NewImage(cpu.ScreenWidth, cpu.ScreenHeight)
	}
	g.screenImg.WritePixels(g.vm.GetFramebufferRGBA())
	screen.DrawImage(g.screenImg, nil)

	if g.vm.Halted {
		ebitenutil.DebugPrintAt(screen, "halted", 4, cpu.ScreenHeight-16)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cpu.ScreenWidth, cpu.ScreenHeight
}

var specialKeys = []struct {
	key  ebiten.Key
	code uint16
}{
	{ebiten.KeyEnter, 128},
	{ebiten.KeyBackspace, 129},
	{ebiten.KeyArrowLeft, 130},
	{ebiten.KeyArrowUp, 131},
	{ebiten.KeyArrowRight, 132},
	{ebiten.KeyArrowDown, 133},
	{ebiten.KeyHome, 134},
	{ebiten.KeyEnd, 135},
	{ebiten.KeyPageUp, 136},
	{ebiten.KeyPageDown, 137},
	{ebiten.KeyInsert, 138},
	{ebiten.KeyDelete, 139},
	{ebiten.KeyEscape, 140},
	{ebiten.KeyF1, 141},
	{ebiten.KeyF2, 142},
	{ebiten.KeyF3, 143},
	{ebiten.KeyF4, 144},
	{ebiten.KeyF5, 145},
	{ebiten.KeyF6, 146},
	{ebiten.KeyF7, 147},
	{ebiten.KeyF8, 148},
	{ebiten.KeyF9, 149},
	{ebiten.KeyF10, 150},
	{ebiten.KeyF11, 151},
}

// pressedKey maps the key held down to its keyboard-register code.
func pressedKey() uint16 {
	for _, k := range specialKeys {
		if ebiten.IsKeyPressed(k.key) {
			return k.code
		}
	}
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		if ebiten.IsKeyPressed(k) {
			return uint16('A' + (k - ebiten.KeyA))
		}
	}
	for k := ebiten.KeyDigit0; k <= ebiten.KeyDigit9; k++ {
		if ebiten.IsKeyPressed(k) {
			return uint16('0' + (k - ebiten.KeyDigit0))
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		return ' '
	}
	return 0
}

// loadProgram accepts a .hack binary, a .asm file, a .vm file or a
// directory of .vm files.
func loadProgram(path string) ([]uint16, error) {
	switch filepath.Ext(path) {
	case ".hack":
		return cpu.LoadHackFile(path)
	case ".asm":
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		prog, err := asm.AssembleSource(string(source))
		if err != nil {
			return nil, err
		}
		return prog.Words, nil
	}

	units, isDir, err := translator.Load(path)
	if err != nil {
		return nil, err
	}
	lines := translator.New().TranslateProgram(units, isDir)
	prog, err := asm.NewAssembler().Assemble(lines)
	if err != nil {
		return nil, err
	}
	return prog.Words, nil
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s program.hack|program.asm|program.vm|dir", filepath.Base(os.Args[0]))
	}

	fullPath, _, err := utils.GetPathInfo(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to resolve path: %v", err)
	}

	words, err := loadProgram(fullPath)
	if err != nil {
		log.Fatalf("Failed to load program: %v", err)
	}

	vm := cpu.NewCPU()
	if err := vm.Load(words); err != nil {
		log.Fatalf("Failed to load program: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cpu.ScreenWidth*2, cpu.ScreenHeight*2)
	ebiten.SetWindowTitle("Hack Desktop")

	game := &Game{vm: vm}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
