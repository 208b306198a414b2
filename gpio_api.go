package epio

// InitGPIOs resets the GPIO bank: all pins input, pulled high, nothing
// externally driven, invert mask cleared.
func (e *Emulator) InitGPIOs() { e.gpio.init(e.gpio.numGPIOs) }

// SetGPIOOutput switches a pin to output.
func (e *Emulator) SetGPIOOutput(pin uint8) { e.gpio.setOutput(pin) }

// SetGPIOInput switches a pin to input (and pulls its output-state bit
// high per the pull-up model).
func (e *Emulator) SetGPIOInput(pin uint8) { e.gpio.setInput(pin) }

// SetGPIOInputLevel drives a pin's input-state bit directly.
func (e *Emulator) SetGPIOInputLevel(pin uint8, level bool) { e.gpio.setInputLevel(pin, level) }

// SetGPIOOutputLevel drives a pin's output-state bit directly.
func (e *Emulator) SetGPIOOutputLevel(pin uint8, level bool) { e.gpio.setOutputLevel(pin, level) }

// SetGPIOInputInvert controls a pin's input-invert flag. Inverted pins
// read back the complement of their input-state bit everywhere the
// executor samples them.
func (e *Emulator) SetGPIOInputInvert(pin uint8, inverted bool) { e.gpio.setInputInvert(pin, inverted) }

// GetGPIOInput reads a pin's input level with invert applied.
func (e *Emulator) GetGPIOInput(pin uint8) bool { return e.gpio.getInput(pin) }

// DriveGPIOsExt drives a set of pins externally, per gpioBank.driveExternally.
func (e *Emulator) DriveGPIOsExt(mask, levels uint64) { e.gpio.driveExternally(mask, levels) }

// ReadPinStates returns, per pin, the output-state bit for an output and
// the input-state bit (input-invert not applied) for an input.
func (e *Emulator) ReadPinStates() uint64 { return e.gpio.readPinStates() }

// ReadDrivenPins returns which pins are currently driven (externally or as
// outputs).
func (e *Emulator) ReadDrivenPins() uint64 { return e.gpio.readDrivenPins() }
