package app

import (
	"log/slog"

	"github.com/humanbelnik/matchroom/internal/config"
	http_init "github.com/humanbelnik/matchroom/internal/delivery/http/init"
	http_movie "github.com/humanbelnik/matchroom/internal/delivery/http/movie"
	http_room "github.com/humanbelnik/matchroom/internal/delivery/http/room"
	http_swipe "github.com/humanbelnik/matchroom/internal/delivery/http/swipe"
	infra_memory_room "github.com/humanbelnik/matchroom/internal/infra/memory/room"
	infra_pg_init "github.com/humanbelnik/matchroom/internal/infra/postgres/init"
	infra_postgres_movie "github.com/humanbelnik/matchroom/internal/infra/postgres/movie"
	infra_redis_init "github.com/humanbelnik/matchroom/internal/infra/redis/init"
	infra_redis_room "github.com/humanbelnik/matchroom/internal/infra/redis/room"
	usecase_movie "github.com/humanbelnik/matchroom/internal/usecase/movie"
	usecase_room "github.com/humanbelnik/matchroom/internal/usecase/room"
	usecase_swipe "github.com/humanbelnik/matchroom/internal/usecase/swipe"
)

func Go(cfg *config.Config) {
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	var roomStore usecase_room.RoomStore
	if cfg.Redis.Host == "" {
		slog.Warn("REDIS_HOST not set, using in-memory room store")
		roomStore = infra_memory_room.New()
	} else {
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		roomStore = infra_redis_room.New(redisConn)
	}

	movieRepository := infra_postgres_movie.New(pgConn)

	roomUC := usecase_room.New(roomStore)
	swipeUC := usecase_swipe.New(roomStore)
	movieUC := usecase_movie.New(movieRepository)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_room.New(roomUC))
	controllerPool.Add(http_swipe.New(swipeUC))
	controllerPool.Add(http_movie.New(movieUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
