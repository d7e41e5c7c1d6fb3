package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/koder-native/kterm/internal/domain/entity"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every later log line with the emitting component.
func WithComponent(ctx context.Context, component string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithTabID tags log lines with the tab an operation runs against.
func WithTabID(ctx context.Context, id entity.TabID) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("tab_id", string(id))
	})
}

// WithPane tags log lines with a pane, its tab and its kind. A nil tab
// leaves tab_id out.
func WithPane(ctx context.Context, tab *entity.Tab, pane *entity.Pane) context.Context {
	if pane == nil {
		return ctx
	}
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		if tab != nil {
			c = c.Str("tab_id", string(tab.ID))
		}
		return c.Str("pane_id", string(pane.ID)).Str("pane_kind", pane.Kind.String())
	})
}

func with(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	logger := fields(FromContext(ctx).With()).Logger()
	return WithContext(ctx, logger)
}
