// Package rlog wraps go.uber.org/zap to give the engine the tagged
// INFO/WARN/ERROR/DEBUG vocabulary described in the external-interface
// section of the specification, while emitting structured fields instead
// of the prototype's plain interpolated strings.
//
// Construction is cheap and side-effect-bounded: by default New builds a
// production zap.Logger (JSON encoding, epoch-seconds timestamps) and wraps it with a
// bounded ring buffer so HUD-style consumers can ask "what happened
// recently" without the engine depending on any rendering library.
package rlog
