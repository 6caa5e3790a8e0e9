package tftcmd

import "fmt"

// Transport is the bus a sequence is driven onto. A non-nil error means the
// operation did not reach the controller.
type Transport interface {
	// WriteCommand sends one byte with the D/C line in command mode.
	WriteCommand(b byte) error
	// WriteData sends one byte with the D/C line in data mode.
	WriteData(b byte) error
	// Delay blocks for ms milliseconds.
	Delay(ms uint16) error
}

// Executor drives validated sequences onto a Transport.
//
// It performs no retries. A failed sequence can be re-issued from the start;
// bytes already written are not rolled back.
type Executor struct {
	t       Transport
	lastErr ValidationResult
}

// NewExecutor returns an Executor writing to t.
func NewExecutor(t Transport) *Executor {
	return &Executor{t: t, lastErr: valid()}
}

// LastError returns the failure recorded by the last ExecuteSequence call.
func (e *Executor) LastError() ValidationResult {
	return e.lastErr
}

// ExecuteSequence validates seq and, only if it is executable, writes every
// element in order. It stops at the first transport failure. The returned
// error is the *ValidationError also available from LastError.
func (e *Executor) ExecuteSequence(seq *Sequence) error {
	log := Logger()
	if r := seq.Validate(); !r.IsValid {
		e.lastErr = r
		log.Warn("sequence rejected", "sequence", seq.Name(), "error", r.Error.String(), "index", r.ErrorIndex)
		return r.Err()
	}
	for i, cmd := range seq.cmds {
		if err := e.execute(cmd); err != nil {
			r := invalid(ErrInvalidCommandValue, i, fmt.Sprintf("transport failed on %s at index %d", cmd.Type(), i))
			r.cause = err
			e.lastErr = r
			log.Warn("transport failure", "sequence", seq.Name(), "index", i, "err", err)
			return r.Err()
		}
	}
	e.lastErr = valid()
	log.Debug("sequence executed", "sequence", seq.Name(), "elements", seq.Len())
	return nil
}

func (e *Executor) execute(cmd Command) error {
	switch cmd.typ {
	case TypeCommand:
		return e.t.WriteCommand(cmd.data[0])
	case TypeData:
		return e.t.WriteData(cmd.data[0])
	case TypeCommandList:
		for _, b := range cmd.data {
			if err := e.t.WriteCommand(b); err != nil {
				return err
			}
		}
	case TypeDataList:
		for _, b := range cmd.data {
			if err := e.t.WriteData(b); err != nil {
				return err
			}
		}
	case TypeDelay:
		return e.t.Delay(cmd.delay)
	}
	return nil
}
