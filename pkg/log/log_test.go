package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx = ContextWithCorrelationID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", GetCorrelationID(ctx))

	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	l := L.WithFields(Fields{
		"dataset_id":  "x1",
		"scope_level": "team",
		"actual_rows": 10,
	}).(*logger)

	assert.Contains(t, l.entry.Data, "dataset_id")
	assert.Contains(t, l.entry.Data, "scope_level")
	assert.NotContains(t, l.entry.Data, "actual_rows")

	// sem campos relevantes devolve o próprio logger
	assert.Same(t, L, L.WithField("rows", 3))
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()

	l := L.WithFields(Fields{"actual_rows": 10}).(*logger)
	assert.Equal(t, 10, l.entry.Data["actual_rows"])
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.DebugLevel)

	Configure("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	Configure("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
