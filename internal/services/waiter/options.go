package waitsrv

import (
	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	"go.uber.org/zap"
)

type serviceOptions struct {
	clock waitdomain.Clock
	log   *zap.Logger
}

type ServiceOption func(so *serviceOptions)

func defaultServiceOptions() *serviceOptions {
	return &serviceOptions{
		clock: realClock{},
		log:   zap.NewNop(),
	}
}

func WithClock(clock waitdomain.Clock) ServiceOption {
	return func(so *serviceOptions) {
		if clock != nil {
			so.clock = clock
		}
	}
}

func WithLogger(log *zap.Logger) ServiceOption {
	return func(so *serviceOptions) {
		if log != nil {
			so.log = log
		}
	}
}
