// Package resolver translates opaque recipient identifiers into a usable
// email address and display name.
package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mystay/email-service/internal/model"
	"github.com/mystay/email-service/internal/repository/profile"
)

//go:generate mockgen -source=resolver.go -destination=../../mocks/service/resolver/mock.go -package=mocks

type profileRepository interface {
	GetProfileByID(ctx context.Context, id string) (model.Profile, error)
	GetGuestFullName(ctx context.Context, id string) (string, error)
	GetHostName(ctx context.Context, id string) (string, string, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Resolver performs the two-step recipient lookup: primary profile row
// first, then the role-specific name table. Store failures are logged and
// reported as an empty resolution, never as an error to the caller.
type Resolver struct {
	repo  profileRepository
	cache cache
}

func New(repo profileRepository, cache cache) *Resolver {
	return &Resolver{repo: repo, cache: cache}
}

const cacheKeyPrefix = "recipient:"

// Resolve looks up a recipient by identifier. An empty identifier yields an
// empty resolution without touching the store. A resolution with an empty
// Email means the lookup failed, whatever the reason.
func (r *Resolver) Resolve(ctx context.Context, strategy retry.Strategy, id string) model.ResolvedRecipient {
	if id == "" {
		return model.ResolvedRecipient{}
	}

	key := cacheKeyPrefix + id

	cached, err := r.cache.GetWithRetry(ctx, strategy, key)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to get recipient from cache")
	}

	if err == nil {
		var rec model.ResolvedRecipient
		if err := json.Unmarshal([]byte(cached), &rec); err == nil {
			return rec
		}
		zlog.Logger.Warn().Str("id", id).Msg("discarding malformed cached recipient")
	}

	p, err := r.repo.GetProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			zlog.Logger.Warn().Str("id", id).Msg("recipient profile not found")
		} else {
			zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to look up recipient profile")
		}
		return model.ResolvedRecipient{}
	}

	rec := model.ResolvedRecipient{
		Email:       p.Email,
		DisplayName: r.displayName(ctx, p),
	}

	body, err := json.Marshal(rec)
	if err == nil {
		if err := r.cache.SetWithRetry(ctx, strategy, key, string(body)); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to cache recipient")
		}
	}

	return rec
}

// displayName runs the role-specific secondary lookup. A missing secondary
// row is expected and silent; any other failure is logged and yields an
// empty name without failing the resolution.
func (r *Resolver) displayName(ctx context.Context, p model.Profile) string {
	switch p.Role {
	case model.RoleGuest:
		fullName, err := r.repo.GetGuestFullName(ctx, p.ID)
		if err != nil {
			if !errors.Is(err, profile.ErrProfileNotFound) {
				zlog.Logger.Warn().Err(err).Str("id", p.ID).Msg("failed to look up guest name")
			}
			return ""
		}
		return fullName

	case model.RoleHost:
		first, last, err := r.repo.GetHostName(ctx, p.ID)
		if err != nil {
			if !errors.Is(err, profile.ErrProfileNotFound) {
				zlog.Logger.Warn().Err(err).Str("id", p.ID).Msg("failed to look up host name")
			}
			return ""
		}
		return JoinName(first, last)

	default:
		return ""
	}
}

// JoinName joins host first and last names with a single space, trimming
// surrounding whitespace and omitting empty parts.
func JoinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
