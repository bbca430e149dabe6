package application

import (
	"testing"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRouterNavigateAndBack(t *testing.T) {
	router := NewRouter("")
	assert.Equal(t, domain.ScreenGenerate, router.Current())
	assert.Equal(t, "/", router.Path())

	assert.Equal(t, domain.ScreenLibrary, router.Navigate("/library/"))
	assert.Equal(t, "/library", router.Path())
	assert.Equal(t, domain.ScreenDashboard, router.Navigate("/somewhere"))
	assert.Equal(t, "/somewhere", router.Path())

	screen, ok := router.Back()
	assert.True(t, ok)
	assert.Equal(t, domain.ScreenLibrary, screen)

	screen, ok = router.Back()
	assert.True(t, ok)
	assert.Equal(t, domain.ScreenGenerate, screen)

	_, ok = router.Back()
	assert.False(t, ok)
}

func TestRouterSamePathDoesNotGrowHistory(t *testing.T) {
	router := NewRouter("/billing")
	router.Navigate("/billing")
	router.Navigate("billing")

	_, ok := router.Back()
	assert.False(t, ok)
}

func TestRouterHistoryIsBounded(t *testing.T) {
	router := NewRouter("/")
	for i := 0; i < maxRouteHistory*2; i++ {
		if i%2 == 0 {
			router.Navigate("/library")
		} else {
			router.Navigate("/billing")
		}
	}

	steps := 0
	for {
		if _, ok := router.Back(); !ok {
			break
		}
		steps++
	}
	assert.Equal(t, maxRouteHistory, steps)
}

func TestRouterNav(t *testing.T) {
	labels := []string{}
	for _, entry := range NewRouter("/").Nav() {
		labels = append(labels, entry.Label)
		assert.Equal(t, entry.Screen, domain.ResolveScreen(entry.Path))
	}
	assert.Equal(t, []string{"Generate", "My Library", "Billing", "Settings"}, labels)
}
