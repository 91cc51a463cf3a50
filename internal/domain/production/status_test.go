package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/domain/production"
)

func splits(statuses ...entity.OrderStatus) []entity.OrderSplit {
	out := make([]entity.OrderSplit, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, entity.OrderSplit{Status: st})
	}
	return out
}

func TestResolveStatus(t *testing.T) {
	cases := []struct {
		name      string
		current   entity.OrderStatus
		remaining int
		splits    []entity.OrderSplit
		want      entity.OrderStatus
	}{
		{
			name:    "planeada sin paquetes no cambia",
			current: entity.StatusPlanned, remaining: 0, splits: nil,
			want: entity.StatusPlanned,
		},
		{
			name:    "en corte con saldo pendiente sigue en corte aunque haya paquete cosiendo",
			current: entity.StatusCutting, remaining: 15, splits: splits(entity.StatusSewing),
			want: entity.StatusCutting,
		},
		{
			name:    "distribución que agota el saldo pasa a costura",
			current: entity.StatusCutting, remaining: 0, splits: splits(entity.StatusSewing),
			want: entity.StatusSewing,
		},
		{
			name:    "todos los paquetes terminados con saldo cero cierra la orden",
			current: entity.StatusSewing, remaining: 0, splits: splits(entity.StatusFinished, entity.StatusFinished),
			want: entity.StatusFinished,
		},
		{
			name:    "paquete pendiente impide el cierre",
			current: entity.StatusSewing, remaining: 0, splits: splits(entity.StatusFinished, entity.StatusSewing),
			want: entity.StatusSewing,
		},
		{
			name:    "saldo pendiente impide el cierre aunque los paquetes terminen",
			current: entity.StatusCutting, remaining: 5, splits: splits(entity.StatusFinished),
			want: entity.StatusCutting,
		},
		{
			name:    "el estado nunca retrocede",
			current: entity.StatusFinished, remaining: 0, splits: splits(entity.StatusSewing),
			want: entity.StatusFinished,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := production.ResolveStatus(tc.current, tc.remaining, tc.splits)
			assert.Equal(t, tc.want, got)
		})
	}
}
