package game

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"brainybunch/internal/catalog"
	"brainybunch/internal/common/clock"
	"brainybunch/internal/model"
)

// Config holds the engine's timing knobs. Tests shrink these; production
// uses DefaultConfig.
type Config struct {
	// RoundTimeout is the authoritative upper bound on answer collection.
	// Client-reported elapsed times are a hint only; this timer is what
	// actually closes a round.
	RoundTimeout time.Duration
	// ResultsDelay is how long round results stay on screen before the next
	// question goes out. Zero advances synchronously.
	ResultsDelay time.Duration
	// CountdownFrom / CountdownStep drive the 3-2-1 broadcast before the
	// first question. A zero step skips straight to game-started.
	CountdownFrom int
	CountdownStep time.Duration
}

func DefaultConfig() Config {
	return Config{
		RoundTimeout:  15 * time.Second,
		ResultsDelay:  5 * time.Second,
		CountdownFrom: 3,
		CountdownStep: time.Second,
	}
}

// Service is the round engine: it owns every room mutation, applies the
// scoring policy, and pushes resulting events through the broadcaster.
type Service struct {
	registry *Registry
	catalog  catalog.Catalog
	clock    clock.Clock
	cfg      Config

	broadcaster Broadcaster
	scoreboard  ScoreBoard
	mirror      Mirror
	archiver    Archiver
}

func NewService(registry *Registry, cat catalog.Catalog, clk clock.Clock, cfg Config) *Service {
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	return &Service{
		registry: registry,
		catalog:  cat,
		clock:    clk,
		cfg:      cfg,
	}
}

// SetBroadcaster wires the WebSocket hub in (setter injection, the hub is
// constructed after the service).
func (s *Service) SetBroadcaster(b Broadcaster) { s.broadcaster = b }

// SetScoreBoard wires the live leaderboard. Optional.
func (s *Service) SetScoreBoard(sb ScoreBoard) { s.scoreboard = sb }

// SetMirror wires the room-meta mirror. Optional.
func (s *Service) SetMirror(m Mirror) { s.mirror = m }

// SetArchiver wires the finished-game archive. Optional.
func (s *Service) SetArchiver(a Archiver) { s.archiver = a }

// Registry exposes room lookup for read-only REST handlers.
func (s *Service) Registry() *Registry { return s.registry }

// Catalog exposes the question source for read-only REST handlers.
func (s *Service) Catalog() catalog.Catalog { return s.catalog }

// Lookup finds a room by code. Codes are case-insensitive.
func (s *Service) Lookup(code string) (*Room, error) {
	return s.registry.Find(code)
}

// CreateRoom builds a room in lobby status with the creator as host and sole
// member.
func (s *Service) CreateRoom(ctx context.Context, hostName string) (*Room, *model.Player, error) {
	name, err := cleanName(hostName)
	if err != nil {
		return nil, nil, err
	}

	now := s.clock.Now()
	host := &model.Player{
		ID:        uuid.New().String(),
		Name:      name,
		IsHost:    true,
		Connected: true,
		JoinedAt:  now,
	}

	room, err := s.registry.create(func(code string) *Room {
		r := newRoom(code, model.ModeTeam, now)
		r.HostID = host.ID
		r.Players = []*model.Player{host}
		return r
	})
	if err != nil {
		return nil, nil, err
	}

	log.Printf("room %s created by %s", room.Code, name)
	s.syncMirror(ctx, room)
	return room, host, nil
}

// JoinRoom adds a player to a lobby. In team mode the player lands on
// whichever team is currently smaller, red on ties.
func (s *Service) JoinRoom(ctx context.Context, code, playerName string) (*Room, *model.Player, error) {
	name, err := cleanName(playerName)
	if err != nil {
		return nil, nil, err
	}
	room, err := s.registry.Find(code)
	if err != nil {
		return nil, nil, err
	}

	room.mu.Lock()
	if room.Status != model.RoomLobby {
		room.mu.Unlock()
		return nil, nil, ErrInvalidState
	}
	if len(room.Players) >= model.MaxPlayers {
		room.mu.Unlock()
		return nil, nil, ErrRoomFull
	}

	player := &model.Player{
		ID:        uuid.New().String(),
		Name:      name,
		Connected: true,
		JoinedAt:  s.clock.Now(),
	}

	if room.Mode == model.ModeTeam {
		red, blue := room.teamSizeLocked(model.TeamRed), room.teamSizeLocked(model.TeamBlue)
		if red >= model.MaxPerTeam && blue >= model.MaxPerTeam {
			room.mu.Unlock()
			return nil, nil, ErrRoomFull
		}
		if red <= blue && red < model.MaxPerTeam {
			player.Team = model.TeamRed
		} else {
			player.Team = model.TeamBlue
		}
	}

	room.Players = append(room.Players, player)
	snap := room.snapshotLocked()
	room.mu.Unlock()

	log.Printf("player %s joined room %s", name, room.Code)
	s.broadcastRoom(room.Code, EventRosterUpdated, &RoomEvent{Room: snap})
	s.syncMirror(ctx, room)
	return room, player, nil
}

// LeaveRoom removes a player. The first remaining connected player (join
// order) inherits the host role; an empty room is torn down and its code
// freed.
func (s *Service) LeaveRoom(ctx context.Context, code, playerID string) error {
	room, err := s.registry.Find(code)
	if err != nil {
		return err
	}

	room.mu.Lock()
	idx := -1
	for i, p := range room.Players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		room.mu.Unlock()
		return ErrPlayerNotFound
	}

	leaving := room.Players[idx]
	room.Players = append(room.Players[:idx], room.Players[idx+1:]...)

	if len(room.Players) == 0 {
		room.stopTimersLocked()
		room.closed = true
		room.mu.Unlock()
		s.teardown(ctx, room)
		return nil
	}

	if leaving.IsHost {
		s.promoteHostLocked(room)
	}

	// A departure can complete the answered set for the round in flight.
	s.maybeResolveEarlyLocked(room)

	snap := room.snapshotLocked()
	room.mu.Unlock()

	log.Printf("player %s left room %s", leaving.Name, room.Code)
	s.broadcastRoom(room.Code, EventRosterUpdated, &RoomEvent{Room: snap})
	s.syncMirror(ctx, room)
	return nil
}

// Disconnect flags a player as disconnected without removing them from the
// roster or scoring. If every player is gone the room is torn down.
func (s *Service) Disconnect(ctx context.Context, code, playerID string) {
	room, err := s.registry.Find(code)
	if err != nil {
		return
	}

	room.mu.Lock()
	player := room.playerLocked(playerID)
	if player == nil {
		room.mu.Unlock()
		return
	}
	player.Connected = false

	anyConnected := false
	for _, p := range room.Players {
		if p.Connected {
			anyConnected = true
			break
		}
	}
	if !anyConnected {
		room.stopTimersLocked()
		room.closed = true
		room.mu.Unlock()
		s.teardown(ctx, room)
		return
	}

	if player.IsHost {
		s.promoteHostLocked(room)
	}

	// The round must never wait on someone who is gone.
	s.maybeResolveEarlyLocked(room)

	snap := room.snapshotLocked()
	room.mu.Unlock()

	log.Printf("player %s disconnected from room %s", player.Name, room.Code)
	s.broadcastRoom(room.Code, EventRosterUpdated, &RoomEvent{Room: snap})
}

// Reconnect re-binds a returning player to their seat.
func (s *Service) Reconnect(ctx context.Context, code, playerID string) (*Room, *model.Player, error) {
	room, err := s.registry.Find(code)
	if err != nil {
		return nil, nil, err
	}

	room.mu.Lock()
	player := room.playerLocked(playerID)
	if player == nil {
		room.mu.Unlock()
		return nil, nil, ErrPlayerNotFound
	}
	player.Connected = true
	cp := *player
	snap := room.snapshotLocked()
	room.mu.Unlock()

	log.Printf("player %s reconnected to room %s", cp.Name, room.Code)
	s.broadcastRoom(room.Code, EventRosterUpdated, &RoomEvent{Room: snap})
	return room, &cp, nil
}

// SetCategory records the host's category selection. Lobby only.
func (s *Service) SetCategory(ctx context.Context, code, requesterID, category string) error {
	room, err := s.registry.Find(code)
	if err != nil {
		return err
	}

	room.mu.Lock()
	if room.HostID != requesterID {
		room.mu.Unlock()
		return ErrNotAuthorized
	}
	if room.Status != model.RoomLobby {
		room.mu.Unlock()
		return ErrInvalidState
	}
	room.Category = category
	snap := room.snapshotLocked()
	room.mu.Unlock()

	s.broadcastRoom(room.Code, EventCategoryUpdated, &RoomEvent{Room: snap})
	s.syncMirror(ctx, room)
	return nil
}

// SetMode switches the game mode. Entering team mode re-partitions the
// roster alternately by join order; leaving it clears team assignments.
func (s *Service) SetMode(ctx context.Context, code, requesterID string, mode model.Mode) error {
	if !mode.Valid() {
		return ErrInvalidMode
	}
	room, err := s.registry.Find(code)
	if err != nil {
		return err
	}

	room.mu.Lock()
	if room.HostID != requesterID {
		room.mu.Unlock()
		return ErrNotAuthorized
	}
	if room.Status != model.RoomLobby {
		room.mu.Unlock()
		return ErrInvalidState
	}

	room.Mode = mode
	for i, p := range room.Players {
		if mode == model.ModeTeam {
			if i%2 == 0 {
				p.Team = model.TeamRed
			} else {
				p.Team = model.TeamBlue
			}
		} else {
			p.Team = model.TeamNone
		}
	}
	snap := room.snapshotLocked()
	room.mu.Unlock()

	s.broadcastRoom(room.Code, EventModeUpdated, &RoomEvent{Room: snap})
	s.syncMirror(ctx, room)
	return nil
}

// StartGame fetches the game's questions and atomically transitions the room
// to playing. Nothing is mutated if the catalog cannot satisfy the request.
func (s *Service) StartGame(ctx context.Context, code, requesterID string) error {
	room, err := s.registry.Find(code)
	if err != nil {
		return err
	}

	room.mu.Lock()
	if room.HostID != requesterID {
		room.mu.Unlock()
		return ErrNotAuthorized
	}
	if room.Status != model.RoomLobby {
		room.mu.Unlock()
		return ErrInvalidState
	}
	if room.Category == "" {
		room.mu.Unlock()
		return ErrCategoryRequired
	}
	if room.Mode != model.ModeSolo && len(room.Players) < 2 {
		room.mu.Unlock()
		return ErrInsufficientPlayers
	}

	questions, err := s.catalog.Fetch(ctx, room.Category, room.TotalRounds)
	if err != nil {
		room.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	// Anyone still unassigned (the room creator never picks a side) lands on
	// the smaller team before play begins.
	if room.Mode == model.ModeTeam {
		for _, p := range room.Players {
			if p.Team == model.TeamNone {
				if room.teamSizeLocked(model.TeamRed) <= room.teamSizeLocked(model.TeamBlue) {
					p.Team = model.TeamRed
				} else {
					p.Team = model.TeamBlue
				}
			}
		}
	}

	room.Status = model.RoomPlaying
	room.CurrentRound = 1
	room.questions = questions
	room.current = questions[0]
	room.Scores = model.TeamScores{}
	room.PlayerScores = make(map[string]float64)
	if room.Mode != model.ModeTeam {
		for _, p := range room.Players {
			room.PlayerScores[p.ID] = 0
		}
	}
	room.Streaks = make(map[string]int)
	room.ledger = nil
	room.answered = make(map[string]bool)
	room.resolved = false
	for _, p := range room.Players {
		p.Score = 0
		p.CorrectAnswers = 0
		p.FastestAnswer = 0
	}
	room.mu.Unlock()

	log.Printf("room %s started: mode=%s category=%s", room.Code, room.Mode, room.Category)
	s.syncMirror(ctx, room)

	if s.cfg.CountdownStep <= 0 {
		s.beginFirstRound(room)
	} else {
		go func() {
			for i := s.cfg.CountdownFrom; i >= 1; i-- {
				s.broadcastRoom(room.Code, EventGameStarting, &CountdownEvent{Countdown: i})
				time.Sleep(s.cfg.CountdownStep)
			}
			s.beginFirstRound(room)
		}()
	}
	return nil
}

func (s *Service) beginFirstRound(room *Room) {
	room.mu.Lock()
	if room.closed || room.Status != model.RoomPlaying || room.current == nil {
		room.mu.Unlock()
		return
	}
	snap := room.snapshotLocked()
	view := room.current.View()
	s.armDeadlineLocked(room)
	room.mu.Unlock()

	s.broadcastRoom(room.Code, EventGameStarted, &QuestionEvent{Room: snap, Question: view})
}

// SubmitAnswer records one player's answer for the current round, scores it,
// and returns the private outcome. The answered-count broadcast goes out to
// the whole room; correctness stays between the engine and the submitter
// until the round resolves.
func (s *Service) SubmitAnswer(ctx context.Context, code, playerID, answer string, elapsedMs int64) (*model.AnswerOutcome, error) {
	room, err := s.registry.Find(code)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	if room.Status != model.RoomPlaying || room.current == nil || room.resolved {
		room.mu.Unlock()
		return nil, ErrInvalidState
	}
	player := room.playerLocked(playerID)
	if player == nil {
		room.mu.Unlock()
		return nil, ErrPlayerNotFound
	}
	if room.answered[playerID] {
		room.mu.Unlock()
		return nil, ErrInvalidSubmission
	}

	if elapsedMs < 0 {
		elapsedMs = 0
	}
	outcome := s.applyAnswerLocked(room, player, answer, elapsedMs)

	// Progress goes out before any resolution this submission triggers, so
	// round-results is always the last word on the round.
	s.broadcastRoom(room.Code, EventAnswerProgress, &AnswerProgressEvent{
		AnsweredCount: len(room.answered),
		TotalPlayers:  len(room.Players),
	})
	s.maybeResolveEarlyLocked(room)
	room.mu.Unlock()

	return &outcome, nil
}

// applyAnswerLocked scores a single answer and writes it into the ledger.
// Caller holds the room lock.
func (s *Service) applyAnswerLocked(room *Room, player *model.Player, answer string, elapsedMs int64) model.AnswerOutcome {
	correct := answer != model.TimeoutAnswer && answer == room.current.CorrectAnswer
	subject := room.subjectLocked(player)

	outcome, streak := Score(correct, elapsedMs, room.Streaks[subject])
	room.Streaks[subject] = streak

	if outcome.Points > 0 {
		if room.Mode == model.ModeTeam {
			switch player.Team {
			case model.TeamRed:
				room.Scores.Red += outcome.Points
			case model.TeamBlue:
				room.Scores.Blue += outcome.Points
			}
		} else {
			room.PlayerScores[player.ID] += outcome.Points
		}
		player.Score += outcome.Points
	}

	if correct {
		player.CorrectAnswers++
		if player.FastestAnswer == 0 || elapsedMs < player.FastestAnswer {
			player.FastestAnswer = elapsedMs
		}
		// Team mode only: a correct answer breaks the opposing team's streak.
		if room.Mode == model.ModeTeam {
			if opp := player.Team.Opponent(); opp != model.TeamNone {
				room.Streaks[string(opp)] = 0
			}
		}
	}

	room.ledger = append(room.ledger, model.AnswerRecord{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Team:       player.Team,
		Answer:     answer,
		TimeMs:     elapsedMs,
		Correct:    correct,
		Points:     outcome.Points,
	})
	room.answered[player.ID] = true
	return outcome
}

// maybeResolveEarlyLocked closes the round as soon as every connected player
// has answered, cancelling the deadline timer. Caller holds the room lock.
func (s *Service) maybeResolveEarlyLocked(room *Room) {
	if room.Status != model.RoomPlaying || room.resolved || room.current == nil {
		return
	}
	if !room.allConnectedAnsweredLocked() {
		return
	}
	if room.deadline != nil {
		room.deadline.Stop()
		room.deadline = nil
	}
	s.resolveLocked(room)
}

// armDeadlineLocked starts the authoritative round timer. Caller holds the
// room lock.
func (s *Service) armDeadlineLocked(room *Room) {
	if room.deadline != nil {
		room.deadline.Stop()
	}
	round := room.CurrentRound
	room.deadline = time.AfterFunc(s.cfg.RoundTimeout, func() {
		s.deadlineExpired(room, round)
	})
}

func (s *Service) deadlineExpired(room *Room, round int) {
	room.mu.Lock()
	defer room.mu.Unlock()
	// The timer can race a final answer or an advance; only the round it was
	// armed for may resolve.
	if room.Status != model.RoomPlaying || room.CurrentRound != round || room.resolved {
		return
	}
	s.resolveLocked(room)
}

// resolveLocked synthesizes timeout outcomes for silent players, freezes the
// round results, broadcasts them, and schedules the advance. Caller holds
// the room lock.
func (s *Service) resolveLocked(room *Room) {
	for _, p := range room.Players {
		if !room.answered[p.ID] {
			s.applyAnswerLocked(room, p, model.TimeoutAnswer, 0)
		}
	}
	room.resolved = true

	results := &model.RoundResults{
		Round:         room.CurrentRound,
		CorrectAnswer: room.current.CorrectAnswer,
		Answers:       append([]model.AnswerRecord(nil), room.ledger...),
		Scores:        room.Scores,
		PlayerScores:  copyScores(room.PlayerScores),
		Streaks:       copyStreaks(room.Streaks),
		Mode:          room.Mode,
	}
	snap := room.snapshotLocked()

	s.broadcastRoom(room.Code, EventRoundResults, &RoundResultsEvent{Room: snap, Results: results})
	s.publishScores(room.Code, snap)

	if s.cfg.ResultsDelay <= 0 {
		s.advanceLocked(room)
		return
	}
	round := room.CurrentRound
	room.advance = time.AfterFunc(s.cfg.ResultsDelay, func() {
		room.mu.Lock()
		defer room.mu.Unlock()
		if room.Status != model.RoomPlaying || room.CurrentRound != round || !room.resolved {
			return
		}
		s.advanceLocked(room)
	})
}

// advanceLocked moves to the next round or finishes the game. Caller holds
// the room lock; round results for the finished round have already been
// broadcast.
func (s *Service) advanceLocked(room *Room) {
	room.CurrentRound++
	if room.CurrentRound > room.TotalRounds {
		s.finishLocked(room)
		return
	}

	room.ledger = nil
	room.answered = make(map[string]bool)
	room.resolved = false
	room.current = room.questions[room.CurrentRound-1]

	snap := room.snapshotLocked()
	view := room.current.View()
	s.armDeadlineLocked(room)

	s.broadcastRoom(room.Code, EventNextQuestion, &QuestionEvent{Room: snap, Question: view})
}

func (s *Service) finishLocked(room *Room) {
	room.Status = model.RoomFinished
	room.CurrentRound = room.TotalRounds
	room.current = nil
	room.questions = nil
	room.stopTimersLocked()

	snap := room.snapshotLocked()
	ended := &GameEndedEvent{Room: snap}
	switch room.Mode {
	case model.ModeTeam:
		switch {
		case room.Scores.Red > room.Scores.Blue:
			ended.Winner = string(model.TeamRed)
		case room.Scores.Blue > room.Scores.Red:
			ended.Winner = string(model.TeamBlue)
		}
	case model.ModeIndividual:
		ended.Standings = standingsLocked(room)
		if len(ended.Standings) > 0 {
			ended.Winner = ended.Standings[0].PlayerID
		}
	case model.ModeSolo:
		var score float64
		for _, v := range room.PlayerScores {
			score += v
		}
		ended.Grade = Grade(score, room.TotalRounds)
	}

	log.Printf("room %s finished: winner=%q grade=%q", room.Code, ended.Winner, ended.Grade)
	s.broadcastRoom(room.Code, EventGameEnded, ended)
	s.archive(room, snap, ended)
	s.syncMirrorMeta(room.metaLocked())
}

// standingsLocked ranks players by score descending; the sort is stable so
// ties keep join order. Caller holds the room lock.
func standingsLocked(room *Room) []model.Standing {
	standings := make([]model.Standing, 0, len(room.Players))
	for _, p := range room.Players {
		standings = append(standings, model.Standing{
			PlayerID: p.ID,
			Name:     p.Name,
			Score:    room.PlayerScores[p.ID],
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// promoteHostLocked hands the host role to the first remaining connected
// player in join order, falling back to the first player if nobody is
// connected. Caller holds the room lock.
func (s *Service) promoteHostLocked(room *Room) {
	if len(room.Players) == 0 {
		return
	}
	for _, p := range room.Players {
		p.IsHost = false
	}
	next := room.Players[0]
	for _, p := range room.Players {
		if p.Connected {
			next = p
			break
		}
	}
	next.IsHost = true
	room.HostID = next.ID
	log.Printf("room %s host passed to %s", room.Code, next.Name)
}

func (s *Service) teardown(ctx context.Context, room *Room) {
	s.registry.Remove(room.Code)
	if s.mirror != nil {
		if err := s.mirror.Delete(ctx, room.Code); err != nil {
			log.Printf("room %s mirror delete failed: %v", room.Code, err)
		}
	}
	log.Printf("room %s torn down", room.Code)
}

func (s *Service) broadcastRoom(code, event string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToRoom(code, event, payload)
	}
}

func (s *Service) syncMirror(ctx context.Context, room *Room) {
	if s.mirror == nil {
		return
	}
	room.mu.Lock()
	meta := room.metaLocked()
	room.mu.Unlock()
	if err := s.mirror.SetMeta(ctx, meta); err != nil {
		log.Printf("room %s mirror sync failed: %v", meta.Code, err)
	}
}

// syncMirrorMeta is the lock-held variant; the caller already built the meta.
func (s *Service) syncMirrorMeta(meta *model.RoomMeta) {
	if s.mirror == nil {
		return
	}
	go func() {
		if err := s.mirror.SetMeta(context.Background(), meta); err != nil {
			log.Printf("room %s mirror sync failed: %v", meta.Code, err)
		}
	}()
}

// publishScores pushes current totals to the live leaderboard. Best-effort.
func (s *Service) publishScores(code string, snap *model.RoomState) {
	if s.scoreboard == nil {
		return
	}
	go func() {
		ctx := context.Background()
		if snap.Mode == model.ModeTeam {
			if err := s.scoreboard.UpdateScore(ctx, code, string(model.TeamRed), snap.Scores.Red); err != nil {
				log.Printf("room %s leaderboard update failed: %v", code, err)
				return
			}
			if err := s.scoreboard.UpdateScore(ctx, code, string(model.TeamBlue), snap.Scores.Blue); err != nil {
				log.Printf("room %s leaderboard update failed: %v", code, err)
			}
			return
		}
		for id, score := range snap.PlayerScores {
			if err := s.scoreboard.UpdateScore(ctx, code, id, score); err != nil {
				log.Printf("room %s leaderboard update failed: %v", code, err)
				return
			}
		}
	}()
}

func (s *Service) archive(room *Room, snap *model.RoomState, ended *GameEndedEvent) {
	if s.archiver == nil {
		return
	}
	summary := &model.GameSummary{
		ID:           uuid.New().String(),
		RoomCode:     room.Code,
		Mode:         room.Mode,
		Category:     room.Category,
		Scores:       snap.Scores,
		PlayerScores: snap.PlayerScores,
		Winner:       ended.Winner,
		Grade:        ended.Grade,
		Rounds:       room.TotalRounds,
		FinishedAt:   s.clock.Now(),
	}
	go func() {
		if err := s.archiver.Save(context.Background(), summary); err != nil {
			log.Printf("room %s archive failed: %v", summary.RoomCode, err)
		}
	}()
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < 1 || len(name) > 20 {
		return "", ErrInvalidName
	}
	return name, nil
}

func copyScores(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyStreaks(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
