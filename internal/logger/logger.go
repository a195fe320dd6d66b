package logger

import "go.uber.org/zap"

// L is the process-wide sugared logger. Init must run before anything
// logs; tests that never call Init get a no-op logger.
var L = zap.NewNop().Sugar()

func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	L = l.Sugar()
	return nil
}

func Sync() {
	_ = L.Sync()
}
