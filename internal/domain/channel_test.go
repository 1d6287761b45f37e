package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChannelTypeClassification(t *testing.T) {
	assert.True(t, TypeBespokeESend.IsBespoke())
	assert.True(t, TypeEmail.IsBespoke(), "legacy EMAIL rows behave as bespoke e-sends")
	assert.False(t, TypeAdsInESend.IsBespoke())

	assert.True(t, TypeBespokeESend.IsEmail())
	assert.True(t, TypeAdsInESend.IsEmail())
	assert.False(t, TypeAudio.IsEmail())

	assert.False(t, ChannelType("PRINT").Valid())
}

func TestParseCadence(t *testing.T) {
	c := ParseCadence("mon,tue,wed,thu,fri")
	assert.Len(t, c, 5)
	assert.True(t, c.Publishes(time.Monday))
	assert.False(t, c.Publishes(time.Saturday))

	// неизвестные токены игнорируются
	c = ParseCadence("fri, bogus")
	assert.Equal(t, "fri", c.String())

	assert.Nil(t, ParseCadence(""))
}

func TestCadenceEmptyPublishesEveryDay(t *testing.T) {
	var c Cadence
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		assert.True(t, c.Publishes(wd))
	}
}

func TestCadenceRoundTrip(t *testing.T) {
	c := ParseCadence("wed,mon")
	// токены сортируются по дню недели
	assert.Equal(t, "mon,wed", c.String())
}
