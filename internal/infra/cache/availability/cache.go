package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

const keyName = "availableDays"

// MaxEntries наибольшее число дней, которое кладется в кэш. Более длинные диапазоны не кэшируются.
const MaxEntries = 366

// Cache кэш результатов расчета доступности в Redis.
// Значения живут ttl и никогда не инвалидируются явно.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
}

// NewCache создает кэш доступности
func NewCache(client redis.Cmdable, ttl time.Duration, prefix string) *Cache {
	return &Cache{client: client, ttl: ttl, prefix: prefix}
}

type entry struct {
	Date              string `json:"date"`
	ValidForArrival   bool   `json:"validForArrival"`
	ValidForDeparture bool   `json:"validForDeparture"`
}

// Key возвращает ключ кэша для запроса доступности.
// Текущая дата входит в ключ всегда: от нее зависят и окно бронирования, и диапазон по умолчанию.
func (c *Cache) Key(from, to *time.Time, today time.Time) string {
	day := today.Format(domain.DateFormat)
	if from != nil && to != nil {
		return fmt.Sprintf("%s%s:%s:%s:%s", c.prefix, keyName, day, from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	}
	return fmt.Sprintf("%s%s:%s:default", c.prefix, keyName, day)
}

// Get возвращает закэшированную доступность. При промахе возвращает (nil, false, nil).
func (c *Cache) Get(ctx context.Context, key string) ([]domain.DayAvailability, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - key=%s: %v", ErrRead, key, err)
	}

	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("%w: Get - key=%s: %v", ErrDecode, key, err)
	}

	days := make([]domain.DayAvailability, 0, len(entries))
	for _, e := range entries {
		d, err := domain.ParseDate(e.Date)
		if err != nil {
			return nil, false, fmt.Errorf("%w: Get - key=%s date=%q: %v", ErrDecode, key, e.Date, err)
		}
		days = append(days, domain.DayAvailability{
			Date:              d,
			ValidForArrival:   e.ValidForArrival,
			ValidForDeparture: e.ValidForDeparture,
		})
	}

	return days, true, nil
}

// Set сохраняет доступность на ttl. Результаты длиннее MaxEntries пропускаются.
func (c *Cache) Set(ctx context.Context, key string, days []domain.DayAvailability) error {
	if len(days) > MaxEntries {
		return nil
	}

	entries := make([]entry, 0, len(days))
	for _, d := range days {
		entries = append(entries, entry{
			Date:              d.Date.Format(domain.DateFormat),
			ValidForArrival:   d.ValidForArrival,
			ValidForDeparture: d.ValidForDeparture,
		})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal key=%s: %v", ErrWrite, key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - key=%s: %v", ErrWrite, key, err)
	}
	return nil
}

// Noop кэш, который ничего не хранит. Используется при выключенном кэше.
type Noop struct{}

func (Noop) Key(from, to *time.Time, today time.Time) string {
	return ""
}

func (Noop) Get(context.Context, string) ([]domain.DayAvailability, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, string, []domain.DayAvailability) error {
	return nil
}
