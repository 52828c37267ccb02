package preferences

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/foresight-shell/internal/app/models"
)

const (
	SessionName = "foresight_session"

	langKey  = "lang"
	themeKey = "theme"
)

var rtlBases = map[string]bool{"ar": true, "fa": true, "he": true, "ur": true}

// Service resolves the language and theme preferences of a request. The
// navigation shell renders them but never interprets them.
type Service struct {
	supported []string
	tags      []language.Tag
	matcher   language.Matcher
	logger    *zap.Logger
}

// NewService accepts BCP 47 tags; the first one is the fallback language.
func NewService(supported []string, logger *zap.Logger) (*Service, error) {
	if len(supported) == 0 {
		return nil, fmt.Errorf("preferences: no supported languages")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("preferences: invalid language %q: %w", s, err)
		}
		tags = append(tags, tag)
	}
	return &Service{
		supported: supported,
		tags:      tags,
		matcher:   language.NewMatcher(tags),
		logger:    logger,
	}, nil
}

func (s *Service) Supported() []string {
	out := make([]string, len(s.supported))
	copy(out, s.supported)
	return out
}

// Match maps any language expression, such as a form value or an
// Accept-Language header, onto a supported language.
func (s *Service) Match(values ...string) string {
	_, index := language.MatchStrings(s.matcher, values...)
	return s.supported[index]
}

// Direction is the text direction of a language.
func Direction(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return "ltr"
	}
	base, _ := tag.Base()
	if rtlBases[base.String()] {
		return "rtl"
	}
	return "ltr"
}

// FromContext reads the preferences from the session, negotiating the
// language from Accept-Language when the session has none.
func (s *Service) FromContext(c *gin.Context) models.Preferences {
	session := sessions.Default(c)

	lang, _ := session.Get(langKey).(string)
	if lang == "" {
		lang = s.Match(c.GetHeader("Accept-Language"))
	} else {
		lang = s.Match(lang)
	}

	theme, _ := session.Get(themeKey).(string)
	if theme != models.ThemeLight {
		theme = models.ThemeDark
	}

	return models.Preferences{
		Language:  lang,
		Direction: Direction(lang),
		Theme:     theme,
		Languages: s.Supported(),
	}
}

func (s *Service) setLanguage(c *gin.Context, lang string) (string, error) {
	matched := s.Match(lang)
	session := sessions.Default(c)
	session.Set(langKey, matched)
	if err := session.Save(); err != nil {
		return "", fmt.Errorf("failed to save language preference: %w", err)
	}
	return matched, nil
}

func (s *Service) toggleTheme(c *gin.Context) (string, error) {
	next := models.ThemeLight
	if s.FromContext(c).Theme == models.ThemeLight {
		next = models.ThemeDark
	}
	session := sessions.Default(c)
	session.Set(themeKey, next)
	if err := session.Save(); err != nil {
		return "", fmt.Errorf("failed to save theme preference: %w", err)
	}
	return next, nil
}
