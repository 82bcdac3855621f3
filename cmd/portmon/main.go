// cmd/portmon/main.go
//go:build rp2040 && board_pico_expander

// Pico firmware that snapshots every logical port through the MCP23017
// expander and streams the values over UART0, blinking the profile's
// indicator pin as a liveness signal.
package main

import (
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/mcp23017"

	"pinio-go/boards"
	"pinio-go/expander"
	"pinio-go/internal/platform"
	"pinio-go/ports"
	"pinio-go/x/conv"
)

const (
	expanderAddr = 0x20
	pollEvery    = 100 * time.Millisecond
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	if err := machine.I2C0.Configure(machine.I2CConfig{Frequency: 400_000}); err != nil {
		println("i2c0 configure failed:", err.Error())
		return
	}
	dev, err := mcp23017.NewI2C(machine.I2C0, expanderAddr)
	if err != nil {
		println("mcp23017 probe failed:", err.Error())
		return
	}
	if err := dev.SetModes([]mcp23017.PinMode{mcp23017.Input | mcp23017.Pullup}); err != nil {
		println("mcp23017 modes failed:", err.Error())
		return
	}

	exp := expander.New(dev)
	prof := boards.Selected
	eng := ports.New(prof, exp, ports.WithDirectWrite(exp))

	uart := uartx.UART0
	_ = uart.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.Pin(0),
		RX:       machine.Pin(1),
	})

	host := platform.MachineIO{}
	host.ConfigureOutput(prof.VersionBlinkPin)

	hex := make([]byte, 2)
	line := make([]byte, 0, 8)
	lvl := false
	for {
		for port := uint8(0); port < prof.TotalPorts(); port++ {
			v := eng.ReadPort(port, 0xFF)
			line = line[:0]
			line = append(line, 'P', '0'+port, '=')
			line = append(line, conv.U8Hex(hex, v)...)
			line = append(line, '\r', '\n')
			_, _ = uart.Write(line)
		}
		if err := exp.Err(); err != nil {
			println("expander fault:", err.Error())
		}
		lvl = !lvl
		host.DigitalWrite(prof.VersionBlinkPin, lvl)
		time.Sleep(pollEvery)
	}
}
