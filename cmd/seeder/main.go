package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"staybook/internal/adapters/observability"
	"staybook/internal/domain"
	"staybook/internal/shared"
	mysqlrepo "staybook/internal/storage/mysql"
)

// Seeds demo users, hotels, images and rooms for local development.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	ownerID := seedOwner(ctx, repo, cfg.BcryptCost)

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, f := range hotelFixtures {
		f := f

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(f hotelFixture) {
			defer wg.Done()
			defer sem.Release(1)

			if err := seedHotel(ctx, repo, ownerID, f); err != nil {
				log.Warn().Str("hotel", f.name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("hotel", f.name).Msg("seed ok")
		}(f)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

func seedOwner(ctx context.Context, repo *mysqlrepo.Repo, cost int) int64 {
	if u, err := repo.UserByEmail(ctx, "owner@staybook.local"); err == nil {
		return u.ID
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("owner-password"), cost)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt failed")
	}
	u := domain.User{
		FullName:     "Demo Owner",
		Email:        "owner@staybook.local",
		PhoneNumber:  "+15550100",
		PasswordHash: string(hash),
		Enabled:      true,
	}
	if err := repo.CreateUser(ctx, &u); err != nil {
		log.Fatal().Err(err).Msg("seed owner failed")
	}
	return u.ID
}

func seedHotel(ctx context.Context, repo *mysqlrepo.Repo, ownerID int64, f hotelFixture) error {
	h := domain.Hotel{
		OwnerID:       ownerID,
		Name:          f.name,
		Address:       &f.address,
		City:          &f.city,
		Country:       &f.country,
		Description:   &f.description,
		PricePerNight: f.pricePerNight,
	}
	if err := repo.CreateHotel(ctx, &h); err != nil {
		return err
	}
	for i, url := range f.images {
		img := domain.HotelImage{HotelID: h.ID, URL: url, IsMain: i == 0}
		if err := repo.CreateHotelImage(ctx, &img); err != nil {
			return err
		}
	}
	for _, rf := range f.rooms {
		rm := domain.Room{HotelID: h.ID, RoomType: rf.roomType, Price: rf.price, Capacity: rf.capacity}
		if err := repo.CreateRoom(ctx, &rm); err != nil {
			return err
		}
	}
	return nil
}
