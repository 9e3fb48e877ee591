package view

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var months = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

var weekDays = [...]string{
	"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi",
}

// FormatDate renders "<weekday> <day> <month>" in French, in t's own location
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s", weekDays[t.Weekday()], t.Day(), months[t.Month()-1])
}

// FormatTemperature rounds half up, so -2.5 becomes -2
func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("%d°C", int(math.Floor(celsius+0.5)))
}

// FormatWind renders the wind speed with its shortest decimal form
func FormatWind(speed float64) string {
	return "Vitesse du vent : " + strconv.FormatFloat(speed, 'f', -1, 64) + " m/s"
}
