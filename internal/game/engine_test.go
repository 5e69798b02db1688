package game

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"brainybunch/internal/model"
)

type recordedEvent struct {
	roomCode string
	name     string
	payload  interface{}
}

// fakeBroadcaster records every event the engine pushes.
type fakeBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeBroadcaster) BroadcastToRoom(roomCode, event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{roomCode: roomCode, name: event, payload: payload})
}

func (f *fakeBroadcaster) BroadcastToPlayer(roomCode, playerID, event string, payload interface{}) {
	f.BroadcastToRoom(roomCode, event, payload)
}

func (f *fakeBroadcaster) all() []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedEvent(nil), f.events...)
}

func (f *fakeBroadcaster) byName(name string) []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedEvent
	for _, e := range f.events {
		if e.name == name {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeBroadcaster) last(name string) (recordedEvent, bool) {
	matches := f.byName(name)
	if len(matches) == 0 {
		return recordedEvent{}, false
	}
	return matches[len(matches)-1], true
}

// fakeCatalog serves generated questions where "right" is always correct.
type fakeCatalog struct {
	err error
}

func (f *fakeCatalog) Categories(_ context.Context) ([]string, error) {
	return []string{"tv_shows"}, nil
}

func (f *fakeCatalog) Fetch(_ context.Context, category string, n int) ([]*model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	questions := make([]*model.Question, n)
	for i := range questions {
		questions[i] = &model.Question{
			ID:               fmt.Sprintf("q-%d", i+1),
			Prompt:           fmt.Sprintf("question %d", i+1),
			CorrectAnswer:    "right",
			IncorrectAnswers: []string{"wrong-a", "wrong-b", "wrong-c"},
			AllAnswers:       []string{"wrong-a", "right", "wrong-b", "wrong-c"},
			Category:         category,
			Difficulty:       model.DifficultyMedium,
		}
	}
	return questions, nil
}

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }

type EngineTestSuite struct {
	suite.Suite
	ctx         context.Context
	broadcaster *fakeBroadcaster
	catalog     *fakeCatalog
	svc         *Service
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.broadcaster = &fakeBroadcaster{}
	s.catalog = &fakeCatalog{}
	// A huge round timeout keeps the deadline timer out of the way; the
	// zero countdown and results delay make start and advance synchronous.
	cfg := Config{
		RoundTimeout:  time.Hour,
		ResultsDelay:  0,
		CountdownFrom: 3,
		CountdownStep: 0,
	}
	s.svc = NewService(NewRegistry(), s.catalog, &fixedClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}, cfg)
	s.svc.SetBroadcaster(s.broadcaster)
}

// setupLobby creates a room and joins extra players, returning the room, the
// host, and every player including the host.
func (s *EngineTestSuite) setupLobby(extra int) (*Room, *model.Player, []*model.Player) {
	room, host, err := s.svc.CreateRoom(s.ctx, "Alice")
	s.Require().NoError(err)

	players := []*model.Player{host}
	for i := 0; i < extra; i++ {
		_, p, err := s.svc.JoinRoom(s.ctx, room.Code, fmt.Sprintf("Player%d", i+2))
		s.Require().NoError(err)
		players = append(players, p)
	}
	return room, host, players
}

func (s *EngineTestSuite) startGame(room *Room, host *model.Player) {
	s.Require().NoError(s.svc.SetCategory(s.ctx, room.Code, host.ID, "tv_shows"))
	s.Require().NoError(s.svc.StartGame(s.ctx, room.Code, host.ID))
}

func (s *EngineTestSuite) TestCreateRoom() {
	room, host, err := s.svc.CreateRoom(s.ctx, "  Alice  ")
	s.Require().NoError(err)

	s.Equal(model.RoomLobby, room.Status)
	s.Equal(model.ModeTeam, room.Mode)
	s.Equal(model.TotalRounds, room.TotalRounds)
	s.Equal("Alice", host.Name)
	s.True(host.IsHost)
	s.True(host.Connected)
	s.Equal(model.TeamNone, host.Team, "the creator picks no side until start")
}

func (s *EngineTestSuite) TestCreateRoomRejectsBadNames() {
	_, _, err := s.svc.CreateRoom(s.ctx, "   ")
	s.ErrorIs(err, ErrInvalidName)

	_, _, err = s.svc.CreateRoom(s.ctx, "this name is way way too long")
	s.ErrorIs(err, ErrInvalidName)
}

func (s *EngineTestSuite) TestJoinBalancesTeams() {
	room, _, players := s.setupLobby(4)

	// The host has no team; joiners alternate red, blue, red, blue.
	s.Equal(model.TeamRed, players[1].Team)
	s.Equal(model.TeamBlue, players[2].Team)
	s.Equal(model.TeamRed, players[3].Team)
	s.Equal(model.TeamBlue, players[4].Team)

	events := s.broadcaster.byName(EventRosterUpdated)
	s.Len(events, 4)
	s.Equal(room.Code, events[0].roomCode)
}

func (s *EngineTestSuite) TestJoinRoomFull() {
	room, _, _ := s.setupLobby(model.MaxPlayers - 1)

	_, _, err := s.svc.JoinRoom(s.ctx, room.Code, "Ninth")
	s.ErrorIs(err, ErrRoomFull)
}

func (s *EngineTestSuite) TestJoinUnknownRoom() {
	_, _, err := s.svc.JoinRoom(s.ctx, "ZZZZZZ", "Bob")
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *EngineTestSuite) TestJoinAfterStartRejected() {
	room, host, _ := s.setupLobby(1)
	s.startGame(room, host)

	_, _, err := s.svc.JoinRoom(s.ctx, room.Code, "Late")
	s.ErrorIs(err, ErrInvalidState)
}

func (s *EngineTestSuite) TestSetCategoryRequiresHost() {
	room, _, players := s.setupLobby(1)

	err := s.svc.SetCategory(s.ctx, room.Code, players[1].ID, "tv_shows")
	s.ErrorIs(err, ErrNotAuthorized)
}

func (s *EngineTestSuite) TestSetModeRepartitionsTeams() {
	room, host, players := s.setupLobby(3)

	s.Require().NoError(s.svc.SetMode(s.ctx, room.Code, host.ID, model.ModeIndividual))
	for _, p := range players {
		s.Equal(model.TeamNone, p.Team)
	}

	s.Require().NoError(s.svc.SetMode(s.ctx, room.Code, host.ID, model.ModeTeam))
	s.Equal(model.TeamRed, players[0].Team)
	s.Equal(model.TeamBlue, players[1].Team)
	s.Equal(model.TeamRed, players[2].Team)
	s.Equal(model.TeamBlue, players[3].Team)
}

func (s *EngineTestSuite) TestSetModeRejectsUnknown() {
	room, host, _ := s.setupLobby(1)

	err := s.svc.SetMode(s.ctx, room.Code, host.ID, model.Mode("battle-royale"))
	s.ErrorIs(err, ErrInvalidMode)
}

func (s *EngineTestSuite) TestStartGuards() {
	room, host, players := s.setupLobby(1)

	// No category selected yet.
	s.ErrorIs(s.svc.StartGame(s.ctx, room.Code, host.ID), ErrCategoryRequired)

	// Only the host starts.
	s.Require().NoError(s.svc.SetCategory(s.ctx, room.Code, host.ID, "tv_shows"))
	s.ErrorIs(s.svc.StartGame(s.ctx, room.Code, players[1].ID), ErrNotAuthorized)
}

func (s *EngineTestSuite) TestStartNeedsTwoPlayersInTeamMode() {
	room, host, err := s.svc.CreateRoom(s.ctx, "Loner")
	s.Require().NoError(err)
	s.Require().NoError(s.svc.SetCategory(s.ctx, room.Code, host.ID, "tv_shows"))

	s.ErrorIs(s.svc.StartGame(s.ctx, room.Code, host.ID), ErrInsufficientPlayers)
}

func (s *EngineTestSuite) TestSoloStartsAlone() {
	room, host, err := s.svc.CreateRoom(s.ctx, "Loner")
	s.Require().NoError(err)
	s.Require().NoError(s.svc.SetMode(s.ctx, room.Code, host.ID, model.ModeSolo))
	s.Require().NoError(s.svc.SetCategory(s.ctx, room.Code, host.ID, "tv_shows"))

	s.Require().NoError(s.svc.StartGame(s.ctx, room.Code, host.ID))
	s.Equal(model.RoomPlaying, room.Status)
}

func (s *EngineTestSuite) TestStartAssignsHostToSmallerTeam() {
	room, host, _ := s.setupLobby(2)
	s.startGame(room, host)

	// Joiners took red and blue; the host lands on red (tie goes red).
	s.Equal(model.TeamRed, host.Team)

	event, ok := s.broadcaster.last(EventGameStarted)
	s.Require().True(ok)
	q := event.payload.(*QuestionEvent)
	s.Equal(1, q.Room.CurrentRound)
	s.Equal("question 1", q.Question.Prompt)
}

func (s *EngineTestSuite) TestStartCatalogFailureMutatesNothing() {
	room, host, _ := s.setupLobby(1)
	s.Require().NoError(s.svc.SetCategory(s.ctx, room.Code, host.ID, "tv_shows"))

	s.catalog.err = fmt.Errorf("mongo is down")
	err := s.svc.StartGame(s.ctx, room.Code, host.ID)
	s.ErrorIs(err, ErrCatalogUnavailable)
	s.Equal(model.RoomLobby, room.Status)
	s.Equal(0, room.CurrentRound)
}

func (s *EngineTestSuite) TestSubmitBeforeStartRejected() {
	room, _, players := s.setupLobby(1)

	_, err := s.svc.SubmitAnswer(s.ctx, room.Code, players[0].ID, "right", 1000)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *EngineTestSuite) TestDuplicateSubmissionRejected() {
	room, host, players := s.setupLobby(2)
	s.startGame(room, host)

	_, err := s.svc.SubmitAnswer(s.ctx, room.Code, players[1].ID, "right", 1000)
	s.Require().NoError(err)

	_, err = s.svc.SubmitAnswer(s.ctx, room.Code, players[1].ID, "wrong-a", 1500)
	s.ErrorIs(err, ErrInvalidSubmission)
}

func (s *EngineTestSuite) TestAnswerProgressBroadcast() {
	room, host, players := s.setupLobby(2)
	s.startGame(room, host)

	_, err := s.svc.SubmitAnswer(s.ctx, room.Code, players[1].ID, "right", 1000)
	s.Require().NoError(err)

	event, ok := s.broadcaster.last(EventAnswerProgress)
	s.Require().True(ok)
	progress := event.payload.(*AnswerProgressEvent)
	s.Equal(1, progress.AnsweredCount)
	s.Equal(3, progress.TotalPlayers)
}

func (s *EngineTestSuite) TestResultsAreLastWordOnRound() {
	room, host, players := s.setupLobby(1)
	s.startGame(room, host)

	_, err := s.svc.SubmitAnswer(s.ctx, room.Code, host.ID, "right", 1000)
	s.Require().NoError(err)
	_, err = s.svc.SubmitAnswer(s.ctx, room.Code, players[1].ID, "right", 1000)
	s.Require().NoError(err)

	// The final submission resolves the round. Its answer-progress broadcast
	// must precede round-results; a progress event trailing the results would
	// read as answers arriving after the round closed.
	events := s.broadcaster.all()
	resultsAt := -1
	for i, e := range events {
		if e.name == EventRoundResults {
			resultsAt = i
			break
		}
	}
	s.Require().GreaterOrEqual(resultsAt, 0)
	for i, e := range events {
		if e.name == EventAnswerProgress {
			s.Less(i, resultsAt, "answer-progress after round-results")
		}
	}
}

func (s *EngineTestSuite) TestCountdownSkipsAbandonedRoom() {
	s.svc.cfg.CountdownFrom = 2
	s.svc.cfg.CountdownStep = 25 * time.Millisecond
	room, host, players := s.setupLobby(1)
	s.startGame(room, host)

	// Everyone leaves while the countdown ticks; the room is torn down.
	s.Require().NoError(s.svc.LeaveRoom(s.ctx, room.Code, players[1].ID))
	s.Require().NoError(s.svc.LeaveRoom(s.ctx, room.Code, host.ID))
	_, err := s.svc.Lookup(room.Code)
	s.ErrorIs(err, ErrRoomNotFound)

	// The pending countdown must not start play on the dead room.
	time.Sleep(150 * time.Millisecond)
	_, ok := s.broadcaster.last(EventGameStarted)
	s.False(ok, "first round began in a torn-down room")
}

func (s *EngineTestSuite) TestRoundResolvesWhenAllAnswer() {
	room, host, players := s.setupLobby(1)
	s.startGame(room, host)

	outcome, err := s.svc.SubmitAnswer(s.ctx, room.Code, host.ID, "right", 1000)
	s.Require().NoError(err)
	s.True(outcome.Correct)
	s.True(outcome.SpeedBonus)
	s.Equal(1.5, outcome.Points)

	outcome, err = s.svc.SubmitAnswer(s.ctx, room.Code, players[1].ID, "wrong-a", 4000)
	s.Require().NoError(err)
	s.False(outcome.Correct)
	s.Equal(0.0, outcome.Points)

	// Everyone answered, so the round resolved and advanced synchronously.
	event, ok := s.broadcaster.last(EventRoundResults)
	s.Require().True(ok)
	results := event.payload.(*RoundResultsEvent).Results
	s.Equal(1, results.Round)
	s.Equal("right", results.CorrectAnswer)
	s.Len(results.Answers, 2)

	s.Equal(2, room.Snapshot().CurrentRound)
	_, ok = s.broadcaster.last(EventNextQuestion)
	s.True(ok)
}

func (s *EngineTestSuite) TestCrossTeamStreakReset() {
	room, host, players := s.setupLobby(3)
	s.startGame(room, host)
	// Joiners took red, blue, red; start puts the host on blue.
	red1, red2 := players[1], players[3]
	blue1, blue2 := host, players[2]

	// Round 1: both reds correct builds the red streak to 2; blues wrong.
	_, err := s.svc.SubmitAnswer(s.ctx, room.Code, red1.ID, "right", 1000)
	s.Require().NoError(err)
	_, err = s.svc.SubmitAnswer(s.ctx, room.Code, red2.ID, "right", 1000)
	s.Require().NoError(err)
	s.Equal(2, room.Snapshot().Streaks[string(model.TeamRed)])

	// A correct blue answer breaks the red streak.
	_, err = s.svc.SubmitAnswer(s.ctx, room.Code, blue1.ID, "right", 1000)
	s.Require().NoError(err)
	snap := room.Snapshot()
	s.Equal(0, snap.Streaks[string(model.TeamRed)])
	s.Equal(1, snap.Streaks[string(model.TeamBlue)])

	_, err = s.svc.SubmitAnswer(s.ctx, room.Code, blue2.ID, "wrong-a", 1000)
	s.Require().NoError(err)

	// The blue miss zeroed blue as well; both teams start round 2 cold.
	snap = room.Snapshot()
	s.Equal(2, snap.CurrentRound)
	s.Equal(0, snap.Streaks[string(model.TeamRed)])
	s.Equal(0, snap.Streaks[string(model.TeamBlue)])
}

func (s *EngineTestSuite) TestIndividualModeNoCrossReset() {
	room, host, players := s.setupLobby(1)
	s.Require().NoError(s.svc.SetMode(s.ctx, room.Code, host.ID, model.ModeIndividual))
	s.startGame(room, host)

	for round := 0; round < 3; round++ {
		_, err := s.svc.SubmitAnswer(s.ctx, room.Code, host.ID, "right", 1000)
		s.Require().NoError(err)
		_, err = s.svc.SubmitAnswer(s.ctx, room.Code, players[1].ID, "right", 1000)
		s.Require().NoError(err)
	}

	// Nobody's correct answer touches anyone else's streak.
	snap := room.Snapshot()
	s.Equal(3, snap.Streaks[host.ID])
	s.Equal(3, snap.Streaks[players[1].ID])
}

func (s *EngineTestSuite) TestTimeoutResolvesRound() {
	s.svc.cfg.RoundTimeout = 30 * time.Millisecond
	room, host, players := s.setupLobby(1)
	s.startGame(room, host)

	// Only one player answers; the deadline covers the other.
	_, err := s.svc.SubmitAnswer(s.ctx, room.Code, host.ID, "right", 1000)
	s.Require().NoError(err)

	s.Eventually(func() bool {
		return room.Snapshot().CurrentRound == 2
	}, time.Second, 5*time.Millisecond)

	event, ok := s.broadcaster.last(EventRoundResults)
	s.Require().True(ok)
	results := event.payload.(*RoundResultsEvent).Results
	s.Require().Len(results.Answers, 2)
	s.Equal(model.TimeoutAnswer, results.Answers[1].Answer)
	s.Equal(players[1].ID, results.Answers[1].PlayerID)
	s.False(results.Answers[1].Correct)
}

func (s *EngineTestSuite) TestDisconnectedPlayerDoesNotBlockRound() {
	room, host, players := s.setupLobby(2)
	s.startGame(room, host)

	s.svc.Disconnect(s.ctx, room.Code, players[2].ID)

	_, err := s.svc.SubmitAnswer(s.ctx, room.Code, host.ID, "right", 1000)
	s.Require().NoError(err)
	_, err = s.svc.SubmitAnswer(s.ctx, room.Code, players[1].ID, "right", 1000)
	s.Require().NoError(err)

	// Both connected players answered; the disconnected one got a timeout.
	s.Equal(2, room.Snapshot().CurrentRound)
	event, _ := s.broadcaster.last(EventRoundResults)
	results := event.payload.(*RoundResultsEvent).Results
	s.Len(results.Answers, 3)
}

func (s *EngineTestSuite) TestHostMigrationOnLeave() {
	room, host, players := s.setupLobby(2)

	s.Require().NoError(s.svc.LeaveRoom(s.ctx, room.Code, host.ID))

	snap := room.Snapshot()
	s.Equal(players[1].ID, snap.HostID)
	s.True(players[1].IsHost)
	s.Len(snap.Players, 2)
}

func (s *EngineTestSuite) TestHostMigrationSkipsDisconnected() {
	room, host, players := s.setupLobby(2)

	s.svc.Disconnect(s.ctx, room.Code, players[1].ID)
	s.Require().NoError(s.svc.LeaveRoom(s.ctx, room.Code, host.ID))

	s.Equal(players[2].ID, room.Snapshot().HostID)
}

func (s *EngineTestSuite) TestEmptyRoomTornDown() {
	room, host, players := s.setupLobby(1)

	s.Require().NoError(s.svc.LeaveRoom(s.ctx, room.Code, players[1].ID))
	s.Require().NoError(s.svc.LeaveRoom(s.ctx, room.Code, host.ID))

	_, err := s.svc.Lookup(room.Code)
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *EngineTestSuite) TestAllDisconnectedTearsDown() {
	room, host, players := s.setupLobby(1)

	s.svc.Disconnect(s.ctx, room.Code, host.ID)
	s.svc.Disconnect(s.ctx, room.Code, players[1].ID)

	_, err := s.svc.Lookup(room.Code)
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *EngineTestSuite) TestReconnectRestoresSeat() {
	room, host, players := s.setupLobby(1)

	s.svc.Disconnect(s.ctx, room.Code, players[1].ID)
	_, p, err := s.svc.Reconnect(s.ctx, room.Code, players[1].ID)
	s.Require().NoError(err)
	s.True(p.Connected)
	s.Equal(players[1].ID, p.ID)

	// Host seat never moved.
	s.Equal(host.ID, room.Snapshot().HostID)
}

func (s *EngineTestSuite) TestFullTeamGame() {
	room, host, players := s.setupLobby(3)
	s.startGame(room, host)
	reds := []*model.Player{players[1], players[3]}
	blues := []*model.Player{host, players[2]}

	// Reds answer everything correctly and fast; blues always miss.
	for round := 1; round <= model.TotalRounds; round++ {
		for _, p := range reds {
			_, err := s.svc.SubmitAnswer(s.ctx, room.Code, p.ID, "right", 1000)
			s.Require().NoError(err)
		}
		for _, p := range blues {
			_, err := s.svc.SubmitAnswer(s.ctx, room.Code, p.ID, "wrong-a", 1000)
			s.Require().NoError(err)
		}
	}

	snap := room.Snapshot()
	s.Equal(model.RoomFinished, snap.Status)
	s.Equal(model.TotalRounds, snap.CurrentRound)

	event, ok := s.broadcaster.last(EventGameEnded)
	s.Require().True(ok)
	ended := event.payload.(*GameEndedEvent)
	s.Equal(string(model.TeamRed), ended.Winner)
	s.Zero(snap.Scores.Blue)
	s.Greater(snap.Scores.Red, 0.0)

	// The game is over; nothing more may be submitted.
	_, err := s.svc.SubmitAnswer(s.ctx, room.Code, host.ID, "right", 1000)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *EngineTestSuite) TestIndividualStandings() {
	room, host, players := s.setupLobby(2)
	s.Require().NoError(s.svc.SetMode(s.ctx, room.Code, host.ID, model.ModeIndividual))
	s.startGame(room, host)

	// players[1] wins every round, host is slow-correct, players[2] misses.
	for round := 1; round <= model.TotalRounds; round++ {
		_, err := s.svc.SubmitAnswer(s.ctx, room.Code, players[1].ID, "right", 1000)
		s.Require().NoError(err)
		_, err = s.svc.SubmitAnswer(s.ctx, room.Code, host.ID, "right", 5000)
		s.Require().NoError(err)
		_, err = s.svc.SubmitAnswer(s.ctx, room.Code, players[2].ID, "wrong-a", 1000)
		s.Require().NoError(err)
	}

	event, ok := s.broadcaster.last(EventGameEnded)
	s.Require().True(ok)
	ended := event.payload.(*GameEndedEvent)
	s.Equal(players[1].ID, ended.Winner)
	s.Require().Len(ended.Standings, 3)
	s.Equal(1, ended.Standings[0].Rank)
	s.Equal(players[1].ID, ended.Standings[0].PlayerID)
	s.Equal(host.ID, ended.Standings[1].PlayerID)
	s.Equal(players[2].ID, ended.Standings[2].PlayerID)
	s.Equal(0.0, ended.Standings[2].Score)
}

func (s *EngineTestSuite) TestSoloGrade() {
	room, host, err := s.svc.CreateRoom(s.ctx, "Loner")
	s.Require().NoError(err)
	s.Require().NoError(s.svc.SetMode(s.ctx, room.Code, host.ID, model.ModeSolo))
	s.Require().NoError(s.svc.SetCategory(s.ctx, room.Code, host.ID, "tv_shows"))
	s.Require().NoError(s.svc.StartGame(s.ctx, room.Code, host.ID))

	// Every answer fast and correct: 1.5 + 1.5 + 18 * 2.5 = 48 of 50.
	for round := 1; round <= model.TotalRounds; round++ {
		_, err := s.svc.SubmitAnswer(s.ctx, room.Code, host.ID, "right", 1000)
		s.Require().NoError(err)
	}

	event, ok := s.broadcaster.last(EventGameEnded)
	s.Require().True(ok)
	ended := event.payload.(*GameEndedEvent)
	s.Equal("A+", ended.Grade)
	s.Empty(ended.Winner)
}

func (s *EngineTestSuite) TestNegativeElapsedClamped() {
	room, host, _ := s.setupLobby(1)
	s.startGame(room, host)

	outcome, err := s.svc.SubmitAnswer(s.ctx, room.Code, host.ID, "right", -500)
	s.Require().NoError(err)
	s.True(outcome.SpeedBonus)
	s.Equal(1.5, outcome.Points)
}

func (s *EngineTestSuite) TestSettingsLockedAfterStart() {
	room, host, _ := s.setupLobby(1)
	s.startGame(room, host)

	s.ErrorIs(s.svc.SetCategory(s.ctx, room.Code, host.ID, "classic_movies"), ErrInvalidState)
	s.ErrorIs(s.svc.SetMode(s.ctx, room.Code, host.ID, model.ModeIndividual), ErrInvalidState)
	s.ErrorIs(s.svc.StartGame(s.ctx, room.Code, host.ID), ErrInvalidState)
}
