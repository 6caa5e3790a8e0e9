// Package tftcmd describes, validates, optimizes, caches and translates the
// command streams sent to TFT display controllers.
//
// A controller is brought up and driven by writing command bytes (D/C line
// low), data bytes (D/C line high) and waiting between some of them. This
// package models such a stream independently of any particular chip or bus.
//
// # Commands and Sequences
//
// A Command is one bus operation:
//
//	COMMAND       one command byte
//	DATA          one data byte
//	COMMAND_LIST  1 to 256 command bytes
//	DATA_LIST     1 to 256 data bytes
//	DELAY         1 to 1000 ms
//	END           end of sequence marker
//
// A Sequence is a named, ordered list of at most 1024 Commands. Elements are
// validated when they are added; an invalid element is rejected and recorded
// in LastError:
//
//	seq := tftcmd.NewSequence("wake")
//	seq.AddCommand(tftcmd.SLPOUT)
//	seq.AddDelay(120)
//	seq.AddCommand(tftcmd.DISPON)
//	seq.AddEnd()
//
//	if !seq.AddDelay(0) {
//		fmt.Println(seq.LastError()) // ZERO_DELAY at 0: delay must not be zero
//	}
//
// A sequence is executable when it is non-empty, ends with END and every
// element is valid. Validate reports the first problem found.
//
// # Execution
//
// An Executor writes a sequence to a Transport, the three-method bus
// abstraction implemented by package spibus for periph.io SPI ports:
//
//	exec := tftcmd.NewExecutor(dev)
//	if err := exec.ExecuteSequence(seq); err != nil {
//		log.Printf("bring-up failed: %v", err)
//	}
//
// Validation happens before the first byte is written. A transport failure
// stops the sequence; bytes already written stay written. The whole sequence
// can be re-issued.
//
// # Translation and caching
//
// A Translator merges consecutive data writes into DATA_LIST blocks, keeps up
// to 32 optimized sequences by name in an LRU cache, and rewrites command
// bytes from one controller family to another:
//
//	tr := tftcmd.NewTranslator(nil)
//	opt := tr.GetOptimizedSequence(seq)
//	out := tr.TranslateSequence(opt, tftcmd.ST7789)
//
// Cache recency is measured on an injected clockwork.Clock so that tests can
// drive it with a fake clock.
//
// # Logging
//
// The package is silent by default. Use SetLogger to route diagnostics to a
// log/slog logger.
package tftcmd
