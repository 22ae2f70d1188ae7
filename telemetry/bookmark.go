package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/pasture/config"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFlockCrash      BookmarkType = "flock_crash"
	BookmarkFeast           BookmarkType = "feast"
	BookmarkLambingBoom     BookmarkType = "lambing_boom"
	BookmarkFlockExtinction BookmarkType = "flock_extinction"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int64        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in the simulation.
type BookmarkDetector struct {
	cfg config.BookmarksConfig

	// State tracking
	windows       int
	recentPeak    int  // peak sheep count since the last crash
	extinctLogged bool // flock extinction fires once
}

// NewBookmarkDetector creates a detector with the given thresholds.
func NewBookmarkDetector(cfg config.BookmarksConfig) *BookmarkDetector {
	return &BookmarkDetector{cfg: cfg}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.windows > 0 {
		if b := bd.checkFlockCrash(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkExtinction(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}
	if b := bd.checkFeast(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkBoom(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.windows++
	if stats.Sheep > bd.recentPeak {
		bd.recentPeak = stats.Sheep
	}

	return bookmarks
}

func (bd *BookmarkDetector) checkFlockCrash(stats WindowStats) *Bookmark {
	if bd.recentPeak == 0 {
		return nil
	}

	dropPercent := 1.0 - float64(stats.Sheep)/float64(bd.recentPeak)
	if dropPercent > bd.cfg.FlockCrash.DropPercent && bd.recentPeak-stats.Sheep >= bd.cfg.FlockCrash.MinDrop {
		// Reset peak after crash
		oldPeak := bd.recentPeak
		bd.recentPeak = stats.Sheep

		return &Bookmark{
			Type:        BookmarkFlockCrash,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Flock crashed %.0f%% from peak %d to %d", dropPercent*100, oldPeak, stats.Sheep),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkExtinction(stats WindowStats) *Bookmark {
	if stats.Sheep > 0 || bd.extinctLogged {
		return nil
	}
	bd.extinctLogged = true
	return &Bookmark{
		Type:        BookmarkFlockExtinction,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Last sheep eaten, %d kills in total", stats.TotalKills),
	}
}

func (bd *BookmarkDetector) checkFeast(stats WindowStats) *Bookmark {
	if bd.cfg.Feast.MinKills <= 0 || stats.Kills < bd.cfg.Feast.MinKills {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkFeast,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Wolves ate %d sheep in one window", stats.Kills),
	}
}

func (bd *BookmarkDetector) checkBoom(stats WindowStats) *Bookmark {
	if bd.cfg.Boom.MinBirths <= 0 || stats.Births < bd.cfg.Boom.MinBirths {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkLambingBoom,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d lambs born in one window", stats.Births),
	}
}
