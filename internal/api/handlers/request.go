package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

// Имена типов в метаданных BR_MALFORMED_PARAM
const (
	TypeDate = "LocalDate"
	TypeID   = "Long"
)

// ErrEmptyBody возвращается DecodeJSON, когда тело запроса пустое
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON разбирает тело запроса. Неизвестные поля игнорируются.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	return err
}

// PathID извлекает числовой идентификатор из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewMalformedParam(domain.ParamID, raw, TypeID, err)
	}
	return id, nil
}

// QueryDate извлекает необязательную дату YYYY-MM-DD из query параметра
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, domain.NewMalformedParam(name, raw, TypeDate, err)
	}
	return &d, nil
}

// Date дата YYYY-MM-DD в JSON
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(domain.DateFormat))
}

// TimeOf возвращает дату или nil, если значение не передано
func (d *Date) TimeOf() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
