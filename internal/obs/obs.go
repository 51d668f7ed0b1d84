// Package obs wires the structured logger shared by the driver and the
// CLI. Library packages (ast, parser, normalize, cnf, assign, dpll,
// dag, propagate) never import this package; they report failure
// through returned errors only, the same boundary the teacher repo
// drew between its silent domain packages and nothing that logs.
package obs

import "github.com/sirupsen/logrus"

// New returns a logrus.Logger configured with the text formatter,
// matching the default operator-framework uses for local/CLI runs.
func New(level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}
