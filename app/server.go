package app

import (
	"io"
	"time"

	"example/cosmic-api/app/config"
	"example/cosmic-api/app/llm"
	"example/cosmic-api/app/logging"
	"example/cosmic-api/app/mailer"
	"example/cosmic-api/app/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server carries everything the handlers need. It is built once in main.
type Server struct {
	store     *Store
	cfg       *config.Config
	logger    *zap.Logger
	completer llm.Completer
	extractor report.Extractor
	mailer    mailer.Mailer
	checkout  CheckoutGateway
}

type Deps struct {
	Store     *Store
	Config    *config.Config
	Logger    *zap.Logger
	Completer llm.Completer
	Extractor report.Extractor
	Mailer    mailer.Mailer
	Checkout  CheckoutGateway
}

func NewServer(d Deps) *Server {
	s := &Server{
		store:     d.Store,
		cfg:       d.Config,
		logger:    d.Logger,
		completer: d.Completer,
		extractor: d.Extractor,
		mailer:    d.Mailer,
		checkout:  d.Checkout,
	}
	if s.cfg == nil {
		s.cfg = &config.Config{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.completer == nil {
		s.completer = llm.Unconfigured{}
	}
	if s.extractor == nil {
		s.extractor = report.NewPrefixExtractor()
	}
	if s.mailer == nil {
		s.mailer = mailer.Unconfigured{}
	}
	if s.checkout == nil {
		s.checkout = NewStripeGateway("")
	}
	return s
}

func (s *Server) log(c *gin.Context) *zap.Logger {
	return logging.FromContext(c, s.logger)
}

func (s *Server) llmTimeout() time.Duration {
	if s.cfg.LLM.Timeout > 0 {
		return s.cfg.LLM.Timeout
	}
	return 120 * time.Second
}

// Close releases provider clients that hold connections, such as Gemini.
// The database is closed by whoever owns the *sql.DB.
func (s *Server) Close() error {
	if c, ok := s.completer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
