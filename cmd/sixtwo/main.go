package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"sixtwo/cpu"
	"sixtwo/debugger"
	"sixtwo/loader"
	"sixtwo/mem"
)

func main() {
	app := cli.NewApp()
	app.Name = "sixtwo"
	app.Usage = "load and run MOS 6502 programs"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "load a program and execute it headlessly until BRK",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "load, l", Usage: "path to the program image"},
				cli.StringFlag{Name: "format, f", Value: "hex", Usage: "hex or ines"},
				cli.Uint64Flag{Name: "addr, a", Value: cpu.ProgramLoadAddr, Usage: "load address (ignored for ines)"},
			},
			Action: runCommand,
		},
		{
			Name:  "debug",
			Usage: "load a program and step through it in the interactive debugger",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "load, l", Usage: "path to the program image"},
				cli.StringFlag{Name: "format, f", Value: "hex", Usage: "hex or ines"},
				cli.Uint64Flag{Name: "addr, a", Value: cpu.ProgramLoadAddr, Usage: "load address (ignored for ines)"},
			},
			Action: debugCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadCpu(c *cli.Context) (*cpu.Cpu, error) {
	path := c.String("load")
	if path == "" {
		return nil, cli.NewExitError("missing -load path", 1)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bus := mem.New()
	mc := cpu.New(bus)

	switch c.String("format") {
	case "ines":
		cart, err := loader.LoadINES(f)
		if err != nil {
			return nil, err
		}
		cart.LoadInto(mc, 0x8000) // PRG-ROM always sits at 0x8000
	default:
		program, err := loader.LoadHex(f)
		if err != nil {
			return nil, err
		}
		addr := uint16(c.Uint64("addr"))
		for i, b := range program {
			mc.Write(addr+uint16(i), b)
		}
		mc.WriteU16(cpu.ResetVector, addr)
	}

	mc.Reset()
	return mc, nil
}

func runCommand(c *cli.Context) error {
	mc, err := loadCpu(c)
	if err != nil {
		return err
	}
	if err := mc.Clock(); err != nil {
		return err
	}

	state := mc.State()
	fmt.Printf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X P=%02X\n",
		state.A, state.X, state.Y, state.SP, state.PC, state.Status)
	return nil
}

func debugCommand(c *cli.Context) error {
	mc, err := loadCpu(c)
	if err != nil {
		return err
	}
	return debugger.Run(mc)
}
