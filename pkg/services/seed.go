package services

import (
	"context"
	"fmt"

	entbot "github.com/rapport-chat/rapport/ent/bot"
	"github.com/rapport-chat/rapport/pkg/config"
)

// SeedBots creates any configured bots that do not yet exist. Existing rows
// are left untouched so operator edits survive restarts.
func (s *StateService) SeedBots(ctx context.Context, seeds []config.BotSeed) error {
	for _, seed := range seeds {
		if seed.ID == "" {
			return NewValidationError("id", "bot seed requires an id")
		}
		exists, err := s.client.Bot.Query().Where(entbot.IDEQ(seed.ID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check bot %s: %w", seed.ID, err)
		}
		if exists {
			continue
		}
		create := s.client.Bot.Create().
			SetID(seed.ID).
			SetName(seed.Name).
			SetBasicInfo(seed.BasicInfo).
			SetBigFive(seed.BigFive)
		if seed.Persona != nil {
			create.SetPersona(seed.Persona)
		}
		if seed.Mood != nil {
			create.SetMoodState(seed.Mood)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("failed to seed bot %s: %w", seed.ID, err)
		}
		s.logger.Info("seeded bot", "bot_id", seed.ID, "name", seed.Name)
	}
	return nil
}
