package log

import "go.uber.org/zap"

// ZapConfig holds configuration for the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

// zapImpl implements Logger using a zap SugaredLogger.
type zapImpl struct {
	sugar *zap.SugaredLogger
}
