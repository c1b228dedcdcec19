// internal/engine/engine.go

// Package engine orchestrates the per-turn pipeline: interpret the utterance,
// filter the catalog, update the interest score, advance conversation state,
// and rank recommendations. Turns for the same conversation are serialized;
// turns for different conversations run concurrently.
package engine

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"foodiebot/internal/catalog"
	"foodiebot/internal/common/errors"
	"foodiebot/internal/common/logger"
	"foodiebot/internal/common/metrics"
	"foodiebot/internal/convlog"
	"foodiebot/internal/models"
	filtercatalog "foodiebot/internal/pipeline/filter-catalog"
	interpretutterance "foodiebot/internal/pipeline/interpret-utterance"
	rankrecommendations "foodiebot/internal/pipeline/rank-recommendations"
	scoreinterest "foodiebot/internal/pipeline/score-interest"
	"foodiebot/internal/session"
)

// Config carries the engine-level tunables. Stage rubric weights come in as
// the flat map from configuration and are pushed down into the stage configs.
type Config struct {
	TopN                 int
	NeutralBaselineScore float64
	TargetMatchRatio     float64
	ScoreWeights         map[string]float64
}

// TurnResult is what a caller gets back for one processed turn.
type TurnResult struct {
	ConversationID  string                  `json:"conversationId"`
	TurnIndex       int                     `json:"turnIndex"`
	Score           float64                 `json:"interestScore"`
	Recommendations []models.Recommendation `json:"recommendations"`
	RelaxedFilters  bool                    `json:"relaxedFilters"`
	BotResponse     string                  `json:"botResponse"`
	VocabVersion    string                  `json:"vocabVersion"`
	// LogDegraded flags that the conversation log append failed and was
	// swallowed; the turn itself is fully valid.
	LogDegraded bool `json:"logDegraded,omitempty"`
}

type Engine struct {
	catalog  catalog.Store
	sessions session.Store
	turnLog  convlog.Store

	interpreter *interpretutterance.Handler
	filter      *filtercatalog.Handler
	scorer      *scoreinterest.Handler
	ranker      *rankrecommendations.Handler

	baseline float64
	logger   logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(cfg Config, catalogStore catalog.Store, sessionStore session.Store, turnLog convlog.Store, log logger.Logger) *Engine {
	scoreCfg := scoreinterest.LoadConfig()
	if cfg.TargetMatchRatio > 0 {
		scoreCfg.TargetMatchRatio = cfg.TargetMatchRatio
	}
	scoreCfg.FromWeightMap(cfg.ScoreWeights)

	rankCfg := rankrecommendations.LoadConfig()
	if cfg.TopN > 0 {
		rankCfg.TopN = cfg.TopN
	}

	return &Engine{
		catalog:     catalogStore,
		sessions:    sessionStore,
		turnLog:     turnLog,
		interpreter: interpretutterance.NewHandler(interpretutterance.LoadConfig(), log),
		filter:      filtercatalog.NewHandler(filtercatalog.LoadConfig(), log),
		scorer:      scoreinterest.NewHandler(scoreCfg, log),
		ranker:      rankrecommendations.NewHandler(rankCfg, log),
		baseline:    cfg.NeutralBaselineScore,
		logger:      log.WithFields(map[string]interface{}{"component": "engine"}),
	}
}

// ProcessTurn runs one utterance through the pipeline. An empty conversation
// ID starts a new conversation with a generated ID. The only fatal failure is
// an unreadable catalog; session save and log append failures degrade the
// turn but never fail it.
func (e *Engine) ProcessTurn(ctx context.Context, conversationID, utterance string) (*TurnResult, error) {
	start := time.Now()

	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	unlock := e.lockConversation(conversationID)
	defer unlock()

	result, err := e.processLocked(ctx, conversationID, utterance)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.TurnsProcessed.WithLabelValues(outcome).Inc()
	metrics.TurnDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if result != nil {
		metrics.InterestScore.Observe(result.Score)
	}
	return result, err
}

func (e *Engine) processLocked(ctx context.Context, conversationID, utterance string) (*TurnResult, error) {
	state, err := e.loadState(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	interpreted, _ := e.interpreter.Execute(ctx, &interpretutterance.Input{Utterance: utterance})
	signals := interpreted.Signals

	products, err := e.catalog.Products(ctx)
	if err != nil {
		e.logger.WithError(err).Error("catalog snapshot unavailable", map[string]interface{}{
			"conversationId": conversationID,
		})
		return nil, errors.NewCatalogUnavailableError(err)
	}

	filtered, _ := e.filter.Execute(ctx, &filtercatalog.Input{
		Catalog: products,
		Signals: signals,
		State:   state,
	})
	for _, stage := range filtered.RelaxedStages {
		metrics.FilterRelaxations.WithLabelValues(stage).Inc()
	}

	scored, _ := e.scorer.Execute(ctx, &scoreinterest.Input{
		Prior:       state.Score,
		Signals:     signals,
		State:       state,
		MatchCount:  len(filtered.Products),
		CatalogSize: len(products),
		Relaxed:     filtered.Relaxed,
	})

	state.Advance(signals, scored.Score)

	if err := e.sessions.Save(ctx, state); err != nil {
		saveErr := errors.NewSessionSaveError(conversationID, err)
		e.logger.WithError(saveErr).Warn("conversation state save failed, continuing", map[string]interface{}{
			"conversationId": conversationID,
			"turnIndex":      state.TurnIndex,
		})
	}

	ranked, _ := e.ranker.Execute(ctx, &rankrecommendations.Input{
		Products: filtered.Products,
		Signals:  signals,
		State:    state,
	})

	result := &TurnResult{
		ConversationID:  conversationID,
		TurnIndex:       state.TurnIndex,
		Score:           scored.Score,
		Recommendations: ranked.Recommendations,
		RelaxedFilters:  filtered.Relaxed,
		BotResponse:     botResponse(ranked.Recommendations, filtered.Relaxed),
		VocabVersion:    interpreted.VocabVersion,
	}

	record := models.TurnRecord{
		ConversationID:  conversationID,
		TurnIndex:       state.TurnIndex,
		Timestamp:       time.Now().UTC(),
		Utterance:       utterance,
		BotResponse:     result.BotResponse,
		Signals:         signals,
		Score:           scored.Score,
		RelaxedFilters:  filtered.Relaxed,
		Recommendations: ranked.Recommendations,
	}
	if err := e.turnLog.Append(ctx, record); err != nil {
		appendErr := errors.NewConversationLogAppendError(err)
		e.logger.WithError(appendErr).Warn("conversation log append failed, continuing", map[string]interface{}{
			"conversationId": conversationID,
			"turnIndex":      state.TurnIndex,
		})
		metrics.ConversationLogFailures.Inc()
		result.LogDegraded = true
	}

	e.logger.Info("turn processed", map[string]interface{}{
		"conversationId":  conversationID,
		"turnIndex":       state.TurnIndex,
		"interestScore":   scored.Score,
		"delta":           scored.Delta,
		"recommendations": len(ranked.Recommendations),
		"relaxed":         filtered.Relaxed,
	})

	return result, nil
}

// loadState reads existing conversation state, or starts a fresh one at the
// neutral baseline. A store read failure also starts fresh: losing context is
// a degraded turn, not a failed one.
func (e *Engine) loadState(ctx context.Context, conversationID string) (*models.ConversationState, error) {
	state, err := e.sessions.Load(ctx, conversationID)
	if err == nil {
		return state, nil
	}
	if !stderrors.Is(err, session.ErrNotFound) {
		loadErr := errors.NewSessionLoadError(conversationID, err)
		e.logger.WithError(loadErr).Warn("conversation state load failed, starting fresh", map[string]interface{}{
			"conversationId": conversationID,
		})
	}
	return models.NewConversationState(conversationID, e.baseline), nil
}

// lockConversation serializes turns per conversation ID. Lock entries are
// never removed; the per-conversation footprint is one mutex.
func (e *Engine) lockConversation(conversationID string) func() {
	e.mu.Lock()
	if e.locks == nil {
		e.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := e.locks[conversationID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[conversationID] = lock
	}
	e.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
