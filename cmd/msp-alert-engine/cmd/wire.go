package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"

	"github.com/donaldgifford/msp-alert-engine/internal/api/handlers"
	"github.com/donaldgifford/msp-alert-engine/internal/config"
	"github.com/donaldgifford/msp-alert-engine/internal/directory"
	"github.com/donaldgifford/msp-alert-engine/internal/events"
	"github.com/donaldgifford/msp-alert-engine/internal/notify"
	"github.com/donaldgifford/msp-alert-engine/internal/realtime"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// buildRouter maps each channel to its configured transport. Channels that
// are not configured get a NoOpNotifier so escalation steps still record a
// dispatch instead of failing.
func buildRouter(cfg *config.NotificationsConfig, hub *realtime.Hub, log *slog.Logger) *notify.Router {
	var email notify.Notifier = notify.NewNoOpNotifier(domain.ChannelEmail, log)
	if cfg.Email.Enabled {
		email = notify.NewEmailNotifier(
			cfg.Email.Host, cfg.Email.Port,
			cfg.Email.Username, cfg.Email.Password,
			cfg.Email.From,
		)
	}

	var sms notify.Notifier = notify.NewNoOpNotifier(domain.ChannelSMS, log)
	if cfg.SMS.Enabled {
		sms = notify.NewRateLimited(
			notify.NewSMSNotifier(cfg.SMS.GatewayURL, cfg.SMS.APIKey, cfg.SMS.Sender, cfg.SMS.Timeout),
			cfg.SMS.RateLimit.PerSecond,
			cfg.SMS.RateLimit.Burst,
			notify.WithDailyLimit(cfg.SMS.RateLimit.Daily),
		)
	}

	var rt notify.Notifier = notify.NewNoOpNotifier(domain.ChannelRealtime, log)
	if cfg.Realtime.Enabled && hub != nil {
		rt = notify.NewHubNotifier(hub)
	}
	if cfg.Discord.Enabled {
		rt = notify.Multi{rt, notify.NewDiscordNotifier(cfg.Discord.WebhookURL)}
	}

	return notify.NewRouter(
		notify.WithLogger(log),
		notify.WithNotifier(domain.ChannelEmail, email),
		notify.WithNotifier(domain.ChannelSMS, sms),
		notify.WithNotifier(domain.ChannelRealtime, rt),
	)
}

// buildDirectory resolves roles from the database first and falls back to
// recipients declared in config.
func buildDirectory(cfg *config.DirectoryConfig, members directory.MemberLister) directory.Directory {
	chain := directory.Chain{directory.NewStoreDirectory(members)}
	if len(cfg.Static) == 0 {
		return chain
	}

	entries := make(map[string]map[string][]domain.Recipient, len(cfg.Static))
	for tenant, roles := range cfg.Static {
		entries[tenant] = make(map[string][]domain.Recipient, len(roles))
		for role, recipients := range roles {
			for _, r := range recipients {
				entries[tenant][role] = append(entries[tenant][role], domain.Recipient{
					Name:            r.Name,
					Email:           r.Email,
					Phone:           r.Phone,
					RealtimeChannel: r.RealtimeChannel,
				})
			}
		}
	}
	return append(chain, directory.NewStatic(entries))
}

// publisherSet is the combined event publisher plus what serve needs to
// probe and close the backends.
type publisherSet struct {
	publisher events.Publisher
	checks    []handlers.HealthOption
	closers   []func()
}

func (p *publisherSet) Close() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		p.closers[i]()
	}
}

// buildPublishers always logs events; NATS, Redis and the realtime tenant
// feed are added when configured.
func buildPublishers(
	ctx context.Context,
	cfg *config.EventsConfig,
	hub *realtime.Hub,
	log *slog.Logger,
) (*publisherSet, error) {
	set := &publisherSet{}
	multi := events.Multi{events.NewLogPublisher(log)}

	if hub != nil {
		multi = append(multi, events.NewHubPublisher(hub))
	}

	if cfg.NATS.Enabled {
		nc, err := events.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.SubjectPrefix, log)
		if err != nil {
			return nil, err
		}
		multi = append(multi, nc)
		set.closers = append(set.closers, nc.Close)
	}

	if cfg.Redis.Enabled {
		rp, err := events.NewRedisStreamPublisher(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.Stream, cfg.Redis.MaxLen)
		if err != nil {
			set.Close()
			return nil, fmt.Errorf("creating redis publisher: %w", err)
		}
		multi = append(multi, rp)
		set.checks = append(set.checks, handlers.WithCheck("redis", rp.Ping))
		set.closers = append(set.closers, func() {
			if err := rp.Close(); err != nil {
				log.Warn("closing redis", "error", err)
			}
		})
	}

	set.publisher = multi
	return set, nil
}
