package app

import (
	storeredis "github.com/VidsSkids/epitrello-backend/internal/clients/redis"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

type Clients struct {
	Tokens storeredis.TokenStore
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	tokens, err := storeredis.NewTokenStore(log)
	if err != nil {
		return Clients{}, err
	}
	return Clients{Tokens: tokens}, nil
}
