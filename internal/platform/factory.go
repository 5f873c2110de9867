package platform

import (
	"context"

	"github.com/aretw0/quire/pkg/service"
	"github.com/aretw0/quire/pkg/store"
	"github.com/aretw0/quire/pkg/typed"
)

// New wires a loaded note service for the store rooted at uri:
//
//	svc, err := quire.New(ctx, ".", quire.WithAdapter("sqlite"))
func New(ctx context.Context, uri string, opts ...Option) (*service.Service, error) {
	o := parseOptions(opts)

	codec, err := typed.CodecByName(o.format)
	if err != nil {
		return nil, err
	}

	kv, err := initKV(ctx, uri, o)
	if err != nil {
		return nil, err
	}

	rs := store.New(kv, store.Config{Codec: codec, Logger: o.logger})

	svcOpts := []service.Option{
		service.WithLogger(o.logger),
		service.WithClock(o.clock),
		service.WithSeed(o.flag("seed", true)),
	}
	if size, ok := o.config["event_buffer"].(int); ok && size > 0 {
		svcOpts = append(svcOpts, service.WithEventBuffer(size))
	}

	svc := service.New(rs, svcOpts...)
	if err := svc.Load(ctx); err != nil {
		_ = svc.Close()
		return nil, err
	}
	return svc, nil
}
