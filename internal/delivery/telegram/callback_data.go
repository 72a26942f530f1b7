package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionNav      = "nav"
	actionFavorite = "fav"
	actionRandom   = "rnd"
	actionTab      = "tab"
	actionGo       = "go"
	actionSelect   = "sel"
	actionList     = "list"
	actionLanguage = "lang"
	actionNoop     = "noop"
)

// Nav sub-actions.
const (
	navPrev = "prev"
	navNext = "next"
)

// Tab sub-actions.
const (
	tabAll       = "all"
	tabFavorites = "fav"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// intParam returns the i-th parameter as an int.
func (cd callbackData) intParam(i int) (int, bool) {
	if i >= len(cd.Params) {
		return 0, false
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// param returns the i-th parameter or "".
func (cd callbackData) param(i int) string {
	if i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

func buildNavCallback(direction string) string {
	return callbackData{Action: actionNav, Params: []string{direction}}.encode()
}

func buildFavoriteCallback() string {
	return actionFavorite
}

func buildRandomCallback() string {
	return actionRandom
}

func buildTabCallback(tab string, page int) string {
	return callbackData{Action: actionTab, Params: []string{tab, strconv.Itoa(page)}}.encode()
}

// buildGoCallback opens the question at a store position.
func buildGoCallback(index int) string {
	return callbackData{Action: actionGo, Params: []string{strconv.Itoa(index)}}.encode()
}

// buildSelectCallback opens a favorite by its question number.
func buildSelectCallback(number int) string {
	return callbackData{Action: actionSelect, Params: []string{strconv.Itoa(number)}}.encode()
}

func buildListCallback(page int) string {
	return callbackData{Action: actionList, Params: []string{strconv.Itoa(page)}}.encode()
}

// buildLanguageMenuCallback opens the language menu.
func buildLanguageMenuCallback() string {
	return actionLanguage
}

func buildLanguageCallback(lang entities.Language) string {
	return callbackData{Action: actionLanguage, Params: []string{string(lang)}}.encode()
}

func buildNoopCallback() string {
	return actionNoop
}
