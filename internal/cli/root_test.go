package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour/internal/model"
)

type RootCmdSuite struct {
	suite.Suite
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func TestRootCmdSuite(t *testing.T) {
	suite.Run(t, new(RootCmdSuite))
}

func (s *RootCmdSuite) SetupTest() {
	for _, key := range []string{
		"CONNECTFOUR_DEPTH",
		"CONNECTFOUR_SEED",
		"CONNECTFOUR_CACHE",
		"CONNECTFOUR_REDIS_URL",
		"CONNECTFOUR_LOG_LEVEL",
		"CONNECTFOUR_OUTPUT",
	} {
		s.T().Setenv(key, "")
	}
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
}

func (s *RootCmdSuite) run(stdin string, args ...string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	return cmd.Execute()
}

// analyze tests

func (s *RootCmdSuite) TestAnalyzeMovesJSON() {
	err := s.run("", "--depth", "2", "--cache", "none", "-o", "json",
		"analyze", "--moves", "0,6,1,6,2")
	s.Require().NoError(err)

	var result AnalysisResult
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &result))
	s.Equal(2, result.Depth)
	s.Equal([]int{3}, result.BestMoves)
	s.Equal(0, result.BestScore)
	s.Require().Len(result.Scores, 7)
	s.Equal(model.MoveScore{Column: 0, Score: -1}, result.Scores[0])
	s.Equal("XXX...O/......O/......./......./......./.......", result.Position)
}

func (s *RootCmdSuite) TestAnalyzePositionText() {
	err := s.run("", "--depth", "2",
		"analyze", "--position", "OOO.XX./X....../......./......./......./.......")
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, "0 1 2 3 4 5 6 \n")
	s.Contains(out, "Depth: 2\n")
	s.Contains(out, "  column 3: 2\n")
	s.Contains(out, "Best: 3 (score 2)\n")
}

func (s *RootCmdSuite) TestAnalyzeComputerFirst() {
	err := s.run("", "--depth", "1", "-o", "json",
		"analyze", "--first", "computer", "--moves", "3,4")
	s.Require().NoError(err)

	var result AnalysisResult
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &result))
	s.True(strings.HasPrefix(result.Position, "...OX../"))
}

func (s *RootCmdSuite) TestAnalyzeRejectsHumanToMove() {
	err := s.run("", "--depth", "1", "analyze", "--moves", "3,3")
	s.ErrorIs(err, model.ErrNotPlayerTurn)
	s.Empty(s.stdout.String())

	err = s.run("", "--depth", "1", "analyze", "--first", "computer", "--moves", "3")
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *RootCmdSuite) TestAnalyzeEmptyBoardComputerFirst() {
	err := s.run("", "--depth", "1", "analyze", "--first", "computer")
	s.Require().NoError(err)
	s.Contains(s.stdout.String(), "Depth: 1\n")
}

func (s *RootCmdSuite) TestAnalyzeRejectsBothInputs() {
	err := s.run("", "analyze", "--moves", "3", "--position", "......./......./......./......./......./.......")
	s.ErrorContains(err, "mutually exclusive")
}

func (s *RootCmdSuite) TestAnalyzeRejectsRandomFirst() {
	err := s.run("", "analyze", "--first", "random", "--moves", "3")
	s.Error(err)
}

func (s *RootCmdSuite) TestAnalyzeRejectsFinishedGame() {
	err := s.run("", "analyze", "--moves", "0,6,1,6,2,6,3")
	s.ErrorIs(err, model.ErrGameComplete)
}

func (s *RootCmdSuite) TestAnalyzeRejectsFullBoard() {
	err := s.run("", "--depth", "1",
		"analyze", "--position", "XOOOXXO/OXXXOOO/XOOOXXX/OXXXOOO/OXOOXXO/XXOXXOX")
	s.ErrorIs(err, model.ErrNoLegalMoves)
}

func (s *RootCmdSuite) TestAnalyzeRejectsBadPosition() {
	err := s.run("", "analyze", "--position", "X?/..")
	s.ErrorIs(err, model.ErrInvalidEncoding)
}

func (s *RootCmdSuite) TestAnalyzeRejectsIllegalMoves() {
	err := s.run("", "analyze", "--moves", "0,0,0,0,0,0,0")
	s.ErrorIs(err, model.ErrIllegalMove)
}

// cache tests

func (s *RootCmdSuite) TestCacheClearWithoutCacheFails() {
	err := s.run("", "cache", "clear")
	s.ErrorContains(err, "no score cache configured")
}

func (s *RootCmdSuite) TestCacheClearMemory() {
	err := s.run("", "--cache", "memory", "cache", "clear")
	s.Require().NoError(err)
	s.Equal("Score cache cleared.\n", s.stdout.String())
}

func (s *RootCmdSuite) TestCacheClearRedis() {
	mini := miniredis.RunT(s.T())
	redisArgs := []string{"--depth", "1", "--cache", "redis", "--redis-url", "redis://" + mini.Addr()}

	s.Require().NoError(s.run("", append(redisArgs, "analyze", "--first", "computer")...))
	s.Require().NotEmpty(mini.Keys())

	s.stdout.Reset()
	s.Require().NoError(s.run("", append(redisArgs, "cache", "clear")...))
	s.Equal("Score cache cleared.\n", s.stdout.String())
	s.Empty(mini.Keys())
}

// play tests

func (s *RootCmdSuite) TestPlayAbandoned() {
	err := s.run("3\n", "--depth", "2", "--seed", "7", "play", "--first", "human")
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, promptMove)
	s.Contains(out, "Computer plays ")
	s.True(strings.HasSuffix(out, "\nGame abandoned.\n"))
}

func (s *RootCmdSuite) TestPlaySeededGamesRepeat() {
	s.Require().NoError(s.run("", "--depth", "1", "--seed", "99", "play", "--first", "computer"))
	first := s.stdout.String()

	s.stdout.Reset()
	s.Require().NoError(s.run("", "--depth", "1", "--seed", "99", "play", "--first", "computer"))
	s.Equal(first, s.stdout.String())
}

func (s *RootCmdSuite) TestPlayRejectsUnknownFirstMover() {
	err := s.run("", "play", "--first", "nobody")
	s.Error(err)
}

// global flag tests

func (s *RootCmdSuite) TestRejectsZeroDepth() {
	err := s.run("", "--depth", "0", "analyze")
	s.ErrorContains(err, "depth must be at least 1")
}

func (s *RootCmdSuite) TestRejectsBadSeed() {
	err := s.run("", "--seed", "abc", "analyze")
	s.ErrorContains(err, "invalid seed")
}

func (s *RootCmdSuite) TestRejectsBadCache() {
	err := s.run("", "--cache", "disk", "analyze")
	s.ErrorContains(err, "invalid CacheType")
}

func (s *RootCmdSuite) TestRejectsBadLogLevel() {
	err := s.run("", "--log-level", "loud", "analyze")
	s.ErrorContains(err, "invalid log level")
}

func (s *RootCmdSuite) TestLogsGoToStderr() {
	err := s.run("", "--depth", "1", "--log-level", "debug", "analyze", "--first", "computer")
	s.Require().NoError(err)
	s.Contains(s.stderr.String(), `"msg":"position searched"`)
	s.NotContains(s.stdout.String(), "position searched")
}
