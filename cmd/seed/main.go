package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotelbook/internal/adapters/observability"
	redisad "hotelbook/internal/adapters/redis"
	"hotelbook/internal/app"
	"hotelbook/internal/domain"
	"hotelbook/internal/shared"
	mysqlrepo "hotelbook/internal/storage/mysql"
)

type seedRoom struct {
	number string
	typ    string
	price  float64
}

type seedHotel struct {
	hotel domain.NewHotel
	rooms []seedRoom
}

func pint(i int) *int           { return &i }
func pfloat(f float64) *float64 { return &f }
func pstr(s string) *string     { return &s }

var hotels = []seedHotel{
	{
		hotel: domain.NewHotel{Name: "Grand Hotel", Address: "123 Main Street", City: "New York", Country: "USA", Rating: pint(5)},
		rooms: []seedRoom{
			{"101", "Deluxe", 200},
			{"102", "Suite", 350},
			{"103", "Standard", 120},
		},
	},
	{
		hotel: domain.NewHotel{Name: "Seaside Resort", Address: "456 Beach Road", City: "Miami", Country: "USA", Rating: pint(4)},
		rooms: []seedRoom{
			{"201", "Ocean View", 280},
			{"202", "Standard", 150},
		},
	},
}

var users = []domain.NewUser{
	{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Phone: pstr("+1234567890")},
	{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", Phone: pstr("+0987654321")},
}

func applyMigrations(db *sql.DB, dir string) error {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := db.Exec(string(b)); err != nil {
			return err
		}
		log.Info().Str("file", f).Msg("migration applied")
	}
	return nil
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	if err := applyMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	hotelRepo := mysqlrepo.NewHotels(db)
	userRepo := mysqlrepo.NewUsers(db)
	roomRepo := mysqlrepo.NewRooms(db)
	bookingRepo := mysqlrepo.NewBookings(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Each hotel and its rooms seed in one goroutine; the semaphore bounds
	// how many run at once.
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstRoom domain.Room

	for _, sh := range hotels {
		sh := sh
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			h, err := hotelRepo.Create(ctx, sh.hotel)
			if err != nil {
				log.Warn().Str("hotel", sh.hotel.Name).Err(err).Msg("seed hotel failed")
				return
			}
			for _, sr := range sh.rooms {
				rm, err := roomRepo.Create(ctx, domain.NewRoom{
					HotelID:       h.ID,
					RoomNumber:    sr.number,
					RoomType:      sr.typ,
					PricePerNight: pfloat(sr.price),
				})
				if err != nil {
					log.Warn().Str("room", sr.number).Err(err).Msg("seed room failed")
					continue
				}
				mu.Lock()
				if firstRoom.ID == 0 || rm.ID < firstRoom.ID {
					firstRoom = rm
				}
				mu.Unlock()
			}
			log.Info().Int64("id", h.ID).Str("name", h.Name).Msg("hotel seeded")
		}()
	}
	wg.Wait()

	var firstUser domain.User
	for i, nu := range users {
		u, err := userRepo.Create(ctx, nu)
		if err != nil {
			log.Warn().Str("email", nu.Email).Err(err).Msg("seed user failed")
			continue
		}
		if i == 0 {
			firstUser = u
		}
		log.Info().Int64("id", u.ID).Str("email", u.Email).Msg("user seeded")
	}

	// one demo booking through the real workflow
	if firstUser.ID != 0 && firstRoom.ID != 0 {
		svc := app.NewBookingService(bookingRepo, roomRepo, userRepo, cache)
		in := time.Now().AddDate(0, 0, 7)
		b, err := svc.Create(ctx, domain.NewBooking{
			UserID:       firstUser.ID,
			RoomID:       firstRoom.ID,
			CheckInDate:  in.Format(domain.DateLayout),
			CheckOutDate: in.AddDate(0, 0, 3).Format(domain.DateLayout),
		})
		if err != nil {
			log.Warn().Err(err).Msg("seed booking failed")
		} else {
			log.Info().Int64("id", b.ID).Float64("total", b.TotalPrice).Msg("booking seeded")
		}
	}

	log.Info().Msg("seeding completed")
}
