package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sudokatie/penumbra/internal/domain"
	"github.com/sudokatie/penumbra/pkg/logger"
)

// Recorder накапливает принятые действия партии для последующего
// воспроизведения. Прикрепляется к движку до первого действия;
// партия без рекордера ничего не пишет и ничего не стоит.
type Recorder struct {
	session domain.ReplaySession
}

// NewRecorder создаёт рекордер для партии с данным конфигом.
func NewRecorder(cfg Config) *Recorder {
	return &Recorder{
		session: domain.ReplaySession{
			Seed:      cfg.Seed,
			Class:     cfg.Class,
			CreatedAt: time.Now().Unix(),
		},
	}
}

// Session возвращает накопленную запись партии.
func (r *Recorder) Session() *domain.ReplaySession {
	return &r.session
}

// AttachRecorder прикрепляет рекордер к движку.
func (g *GameState) AttachRecorder(r *Recorder) {
	g.recorder = r
}

// recordAction пишет принятое действие в рекордер. Вызывается после
// проверки энергии: в запись попадают только исполненные действия.
func (g *GameState) recordAction(action domain.Action) {
	if g.recorder == nil {
		return
	}
	g.recorder.session.Actions = append(g.recorder.session.Actions, domain.ReplayAction{
		Turn:   g.Turn,
		Action: action,
	})
}

// Playback воспроизводит записанную партию на тех же записях активности.
// Номер хода каждого записанного действия сверяется с фактическим:
// расхождение означает, что записи или код разошлись с оригинальной
// партией, и дальше воспроизводить бессмысленно.
func Playback(records []domain.ActivityRecord, session *domain.ReplaySession) (*GameState, error) {
	g, err := New(records, Config{Seed: session.Seed, Class: session.Class})
	if err != nil {
		return nil, fmt.Errorf("engine: playback: %w", err)
	}

	playbackLogger := logger.Component("engine").WithFields(logrus.Fields{
		"seed":    session.Seed,
		"actions": len(session.Actions),
	})
	playbackLogger.Info("Playback started.")

	for i, recorded := range session.Actions {
		if g.GameOver {
			playbackLogger.WithField("replayed", i).Warn("Playback stopped early: game over.")
			break
		}
		if recorded.Turn != g.Turn {
			return nil, fmt.Errorf("engine: playback diverged at action %d: recorded turn %d, actual %d",
				i, recorded.Turn, g.Turn)
		}

		g.ProcessAction(recorded.Action)
		g.ProcessEnemies()
	}

	playbackLogger.WithFields(logrus.Fields{
		"turns":    g.Turn,
		"gameOver": g.GameOver,
		"victory":  g.Victory,
	}).Info("Playback complete.")

	return g, nil
}
