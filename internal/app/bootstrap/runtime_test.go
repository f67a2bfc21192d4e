package bootstrap

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/hmktraders999-droid/AivoraHospitality/internal/config"
	"github.com/hmktraders999-droid/AivoraHospitality/internal/leads"
)

func TestBuildRedisClient(t *testing.T) {
	assert.Nil(t, BuildRedisClient(context.Background(), &appconfig.Config{}, nil, true))

	mr := miniredis.RunT(t)
	client := BuildRedisClient(context.Background(), &appconfig.Config{RedisAddr: mr.Addr()}, nil, true)
	require.NotNil(t, client)
	defer client.Close()

	mr.Close()
	assert.Nil(t, BuildRedisClient(context.Background(), &appconfig.Config{RedisAddr: mr.Addr()}, nil, true))
}

func TestBuildSinksNoneConfigured(t *testing.T) {
	assert.Empty(t, BuildSinks(&appconfig.Config{}, SinkDeps{}, nil))
	assert.Nil(t, BuildSinks(nil, SinkDeps{}, nil))
}

func TestBuildSinksAllConfigured(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &appconfig.Config{
		SupabaseURL:       "https://project.supabase.co",
		SupabaseAnonKey:   "anon",
		SupabaseTable:     "Leads",
		RedisAddr:         mr.Addr(),
		LeadStream:        "leads:submitted",
		SendGridAPIKey:    "sg-key",
		SendGridFromEmail: "noreply@aivora.example",
		LeadNotifyEmail:   "sales@aivora.example",
		LeadArchiveBucket: "aivora-leads",
	}
	client := BuildRedisClient(context.Background(), cfg, nil, false)
	require.NotNil(t, client)
	defer client.Close()

	sinks := BuildSinks(cfg, SinkDeps{Redis: client, S3: &nopS3{}}, nil)
	names := make([]string, 0, len(sinks))
	for _, s := range sinks {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"supabase", "redis_stream", "s3_archive", "sendgrid"}, names)
}

func TestBuildSinksSkipsInvalidSupabaseURL(t *testing.T) {
	cfg := &appconfig.Config{SupabaseURL: "not a url", SupabaseAnonKey: "anon"}
	assert.Empty(t, BuildSinks(cfg, SinkDeps{}, nil))
}

func TestBuildSinksRedisStreamNeedsClient(t *testing.T) {
	cfg := &appconfig.Config{RedisAddr: "localhost:6379", LeadStream: "leads:submitted"}
	assert.Empty(t, BuildSinks(cfg, SinkDeps{}, nil))
}

func TestBuildSinksArchiveNeedsClient(t *testing.T) {
	cfg := &appconfig.Config{LeadArchiveBucket: "aivora-leads"}
	assert.Empty(t, BuildSinks(cfg, SinkDeps{}, nil))
}

func TestBuildS3ClientDisabled(t *testing.T) {
	client, err := BuildS3Client(context.Background(), &appconfig.Config{})
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestBuildS3ClientWithEndpointOverride(t *testing.T) {
	client, err := BuildS3Client(context.Background(), &appconfig.Config{
		AWSRegion:           "us-east-1",
		AWSAccessKeyID:      "test",
		AWSSecretAccessKey:  "test",
		AWSEndpointOverride: "http://localhost:4566",
		LeadArchiveBucket:   "aivora-leads",
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:4566", *client.Options().BaseEndpoint)
	assert.True(t, client.Options().UsePathStyle)
}

type nopS3 struct{}

func (nopS3) PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return &s3.PutObjectOutput{}, nil
}

func TestBuildLeadRepositoryFallsBackToMemory(t *testing.T) {
	repo := BuildLeadRepository(nil, &appconfig.Config{Env: "development"}, nil)
	_, ok := repo.(*leads.InMemoryRepository)
	assert.True(t, ok)
}

func TestBuildPostgresPoolDisabled(t *testing.T) {
	pool, err := BuildPostgresPool(context.Background(), &appconfig.Config{})
	assert.NoError(t, err)
	assert.Nil(t, pool)
}

func TestBuildPostgresPoolInvalidURL(t *testing.T) {
	_, err := BuildPostgresPool(context.Background(), &appconfig.Config{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}

func TestNewMigratorRequiresURL(t *testing.T) {
	_, err := NewMigrator("  ")
	assert.Error(t, err)
}
