package core

// Solver decides satisfiability for a formula already reduced to the
// representation its pipeline operates over (CNF for DPLL, a DAG for
// the linear propagator).
type Solver interface {
	Name() string
	Solve(formula interface{}) (satisfiable bool, witness map[string]bool, err error)
}

// Logger is the minimal structured-logging surface the driver and CLI
// depend on; satisfied by *logrus.Logger and *logrus.Entry without
// either package needing to import logrus directly.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// NopLogger discards everything logged to it; the zero value of
// core.NopLogger is ready to use.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Warnf(string, ...interface{})  {}
