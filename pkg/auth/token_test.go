package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret-test-secret-test-secret",
		Issuer:            "storefront-test",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()
	userID := uuid.New()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{
		UserID: userID,
		Role:   enums.UserRoleCustomer,
		JTI:    "jti-123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, enums.UserRoleCustomer, claims.Role)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
	assert.Equal(t, "jti-123", claims.ID)
	assert.WithinDuration(t, now.Add(15*time.Minute), claims.ExpiresAt.Time, 2*time.Second)
}

func TestMintAccessTokenGeneratesJTI(t *testing.T) {
	cfg := testJWTConfig()

	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleAdmin,
	})
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	require.NotEmpty(t, claims.ID)
	_, err = uuid.Parse(claims.ID)
	assert.NoError(t, err)
}

func TestMintAccessTokenValidation(t *testing.T) {
	base := testJWTConfig()
	payload := AccessTokenPayload{UserID: uuid.New(), Role: enums.UserRoleCustomer}

	cases := []struct {
		name    string
		mutate  func(*config.JWTConfig, *AccessTokenPayload)
		wantErr string
	}{
		{
			name:    "missing secret",
			mutate:  func(c *config.JWTConfig, _ *AccessTokenPayload) { c.Secret = "" },
			wantErr: "secret",
		},
		{
			name:    "missing issuer",
			mutate:  func(c *config.JWTConfig, _ *AccessTokenPayload) { c.Issuer = "" },
			wantErr: "issuer",
		},
		{
			name:    "non positive expiration",
			mutate:  func(c *config.JWTConfig, _ *AccessTokenPayload) { c.ExpirationMinutes = 0 },
			wantErr: "expiration",
		},
		{
			name:    "invalid role",
			mutate:  func(_ *config.JWTConfig, p *AccessTokenPayload) { p.Role = enums.UserRole("ghost") },
			wantErr: "role",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			p := payload
			tc.mutate(&cfg, &p)

			_, err := MintAccessToken(cfg, time.Now(), p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleCustomer,
	})
	require.NoError(t, err)

	bad := cfg
	bad.Secret = "a-different-secret-a-different-secret"
	_, err = ParseAccessToken(bad, token)
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()

	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleCustomer,
	})
	require.NoError(t, err)

	other := cfg
	other.Issuer = "someone-else"
	_, err = ParseAccessToken(other, token)
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	past := time.Now().Add(-2 * time.Hour)

	token, err := MintAccessToken(cfg, past, AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleCustomer,
	})
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	require.Error(t, err)

	claims, err := ParseAccessTokenAllowExpired(cfg, token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Before(time.Now()))
}
