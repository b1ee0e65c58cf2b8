package utils

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// InitI18NBundle registers the built-in English messages and loads every yaml
// translation file found in dir. An empty dir only keeps the built-in messages.
func InitI18NBundle(dir string, defaults ...*i18n.Message) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	if err := b.AddMessages(language.English, defaults...); err != nil {
		return err
	}

	if dir != "" {
		files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
		if err != nil {
			return err
		}
		for _, f := range files {
			if _, err := b.LoadMessageFile(f); err != nil {
				return err
			}
			log.WithField("prefix", "i18n").WithField("file", f).Debug("message file loaded")
		}
	}

	bundle = b
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}

// Localize renders a message in the given language and falls back to English.
// A missing message renders as its id.
func Localize(lang, id string, data map[string]interface{}) string {
	if bundle == nil {
		return id
	}

	s, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		log.WithField("prefix", "i18n").WithError(err).WithField("message_id", id).Warn("localize message")
		if s == "" {
			return id
		}
	}
	return s
}
