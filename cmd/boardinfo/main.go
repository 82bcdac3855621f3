// cmd/boardinfo/main.go

// Development aid: prints the capability table of each shipped profile the
// way the protocol layer would report it.
package main

import (
	"fmt"
	"io"
	"os"

	"pinio-go/boards"
)

func main() {
	profiles := []boards.Profile{
		boards.UnoBLE(boards.Config{MaxServos: 12, AnalogInputs: 6, PWM: boards.ATmega328PHasPWM}),
		boards.UnoBLE(boards.Config{MaxServos: 12, AnalogInputs: 8, PWM: boards.ATmega328PHasPWM}),
		boards.Mega(boards.Config{MaxServos: 48, PWM: boards.ATmega2560HasPWM}),
		boards.PicoExpander(boards.Config{}),
	}
	for _, p := range profiles {
		printProfile(os.Stdout, p)
	}
}

func printProfile(w io.Writer, p boards.Profile) {
	fmt.Fprintf(w, "%s: pins=%d analog=%d ports=%d blink=%d\n",
		p.Name, p.TotalPins, p.TotalAnalogPins, p.TotalPorts(), p.VersionBlinkPin)
	for pin := uint8(0); pin < p.TotalPins; pin++ {
		fmt.Fprintf(w, "  %3d %s%s%s%s%s", pin,
			mark(p.IsDigital(pin), "d"),
			mark(p.IsAnalog(pin), "a"),
			mark(p.IsPWM(pin), "p"),
			mark(p.IsServo(pin), "s"),
			mark(p.IsI2C(pin), "i"))
		if p.IsAnalog(pin) {
			fmt.Fprintf(w, "  A%d", p.ToAnalog(pin))
		}
		fmt.Fprintln(w)
	}
}

func mark(on bool, s string) string {
	if on {
		return s
	}
	return "-"
}
