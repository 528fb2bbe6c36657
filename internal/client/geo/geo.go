// Package geo is a static table of Brazilian states and their main cities
// with coordinates, used to turn a chosen city into a search center.
package geo

import (
	"errors"
	"strings"
)

var ErrUnknownCity = errors.New("unknown city")

type State struct {
	Code string
	Name string
}

type City struct {
	Name      string
	Latitude  float64
	Longitude float64
}

var states = []State{
	{"AC", "Acre"}, {"AL", "Alagoas"}, {"AP", "Amapá"}, {"AM", "Amazonas"},
	{"BA", "Bahia"}, {"CE", "Ceará"}, {"DF", "Distrito Federal"}, {"ES", "Espírito Santo"},
	{"GO", "Goiás"}, {"MA", "Maranhão"}, {"MT", "Mato Grosso"}, {"MS", "Mato Grosso do Sul"},
	{"MG", "Minas Gerais"}, {"PA", "Pará"}, {"PB", "Paraíba"}, {"PR", "Paraná"},
	{"PE", "Pernambuco"}, {"PI", "Piauí"}, {"RJ", "Rio de Janeiro"}, {"RN", "Rio Grande do Norte"},
	{"RS", "Rio Grande do Sul"}, {"RO", "Rondônia"}, {"RR", "Roraima"}, {"SC", "Santa Catarina"},
	{"SP", "São Paulo"}, {"SE", "Sergipe"}, {"TO", "Tocantins"},
}

var cities = map[string][]City{
	"AC": {{"Rio Branco", -9.97499, -67.82431}},
	"AL": {{"Maceió", -9.57131, -36.78195}},
	"AP": {{"Macapá", 0.03493, -51.06944}},
	"AM": {{"Manaus", -3.10194, -60.02500}},
	"BA": {{"Salvador", -12.97111, -38.51083}, {"Feira de Santana", -12.26667, -38.96667}},
	"CE": {{"Fortaleza", -3.71722, -38.54333}},
	"DF": {{"Brasília", -15.77972, -47.92972}},
	"ES": {{"Vitória", -20.31944, -40.33778}},
	"GO": {{"Goiânia", -16.67861, -49.25389}},
	"MA": {{"São Luís", -2.52972, -44.30278}},
	"MT": {{"Cuiabá", -15.59611, -56.09667}},
	"MS": {{"Campo Grande", -20.44278, -54.64639}},
	"MG": {{"Belo Horizonte", -19.91667, -43.93417}, {"Uberlândia", -18.91861, -48.27722}},
	"PA": {{"Belém", -1.45583, -48.50444}},
	"PB": {{"João Pessoa", -7.11500, -34.86306}},
	"PR": {{"Curitiba", -25.42778, -49.27306}, {"Londrina", -23.31028, -51.16278}},
	"PE": {{"Recife", -8.05389, -34.88111}},
	"PI": {{"Teresina", -5.08917, -42.80194}},
	"RJ": {{"Rio de Janeiro", -22.90694, -43.17278}, {"Niterói", -22.88333, -43.10361}},
	"RN": {{"Natal", -5.79500, -35.20944}},
	"RS": {{"Porto Alegre", -30.03306, -51.23000}},
	"RO": {{"Porto Velho", -8.76194, -63.90389}},
	"RR": {{"Boa Vista", 2.81972, -60.67333}},
	"SC": {{"Florianópolis", -27.59667, -48.54917}, {"Joinville", -26.30444, -48.84556}},
	"SP": {
		{"São Paulo", -23.55052, -46.633308},
		{"Campinas", -22.90556, -47.06083},
		{"Santos", -23.96083, -46.33306},
		{"Ribeirão Preto", -21.17750, -47.81028},
	},
	"SE": {{"Aracaju", -10.91111, -37.07167}},
	"TO": {{"Palmas", -10.16745, -48.32766}},
}

// DefaultState and DefaultCity locate the search center used when the user
// has not picked one.
const (
	DefaultState = "SP"
	DefaultCity  = "São Paulo"
)

func States() []State {
	out := make([]State, len(states))
	copy(out, states)
	return out
}

// Cities returns the cities of a state code (case-insensitive), or nil.
func Cities(stateCode string) []City {
	list := cities[strings.ToUpper(strings.TrimSpace(stateCode))]
	if list == nil {
		return nil
	}
	out := make([]City, len(list))
	copy(out, list)
	return out
}

// Lookup finds a city by state code and name. Both comparisons ignore case
// and surrounding spaces.
func Lookup(stateCode, cityName string) (City, error) {
	name := strings.TrimSpace(cityName)
	for _, c := range cities[strings.ToUpper(strings.TrimSpace(stateCode))] {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return City{}, ErrUnknownCity
}

// Default returns the default city.
func Default() City {
	c, _ := Lookup(DefaultState, DefaultCity)
	return c
}
