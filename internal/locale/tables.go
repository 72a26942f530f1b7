package locale

import "github.com/aliskhannn/spirits-book-bot/internal/domain/entities"

var tables = map[entities.Language]Strings{
	entities.LanguagePortuguese: {
		Title:          "Livro dos Espíritos",
		Question:       "Pergunta",
		Previous:       "⬅️ Anterior",
		Next:           "Próxima ➡️",
		Favorite:       "⭐ Favoritar",
		Unfavorite:     "❌ Desfavoritar",
		Random:         "🎲 Aleatória",
		All:            "📖 Todas",
		Favorites:      "⭐ Favoritas",
		FavoritesTitle: "⭐ Perguntas favoritas:",
		Select:         "🔢 Escolher pergunta",
		Language:       "🌐 Idioma",

		AddedToFavorites:     "⭐ Adicionado aos favoritos",
		RemovedFromFavorites: "❌ Removido dos favoritos",
		RandomShown:          "🎲 Pergunta aleatória exibida",
		ErrorLoading:         "Erro ao carregar o conteúdo do livro.",
		NoFavorites:          "Nenhuma pergunta favorita ainda.",

		Help: "/book — pergunta atual\n/random — pergunta aleatória\n/favorites — perguntas favoritas\n" +
			"/language — mudar idioma\n/reload — recarregar o livro\nEnvie um número para abrir a pergunta.",
		ChooseLanguage:  "Escolha o idioma:",
		LanguageChanged: "Idioma alterado.",
		Reloaded:        "Livro recarregado.",
		UnknownCommand:  "Comando desconhecido. Use /help.",
		NotFound:        "Pergunta não encontrada.",
		InternalError:   "Algo deu errado. Tente novamente mais tarde.",
	},
	entities.LanguageEnglish: {
		Title:          "The Spirits' Book",
		Question:       "Question",
		Previous:       "⬅️ Previous",
		Next:           "Next ➡️",
		Favorite:       "⭐ Favorite",
		Unfavorite:     "❌ Unfavorite",
		Random:         "🎲 Random",
		All:            "📖 All",
		Favorites:      "⭐ Favorites",
		FavoritesTitle: "⭐ Favorite Questions:",
		Select:         "🔢 Choose question",
		Language:       "🌐 Language",

		AddedToFavorites:     "⭐ Added to favorites",
		RemovedFromFavorites: "❌ Removed from favorites",
		RandomShown:          "🎲 Random question shown",
		ErrorLoading:         "Failed to load book content.",
		NoFavorites:          "No favorite questions yet.",

		Help: "/book — current question\n/random — random question\n/favorites — favorite questions\n" +
			"/language — change language\n/reload — reload the book\nSend a number to open that question.",
		ChooseLanguage:  "Choose a language:",
		LanguageChanged: "Language changed.",
		Reloaded:        "Book reloaded.",
		UnknownCommand:  "Unknown command. Use /help.",
		NotFound:        "Question not found.",
		InternalError:   "Something went wrong. Please try again later.",
	},
	entities.LanguageSpanish: {
		Title:          "El Libro de los Espíritus",
		Question:       "Pregunta",
		Previous:       "⬅️ Anterior",
		Next:           "Siguiente ➡️",
		Favorite:       "⭐ Favorita",
		Unfavorite:     "❌ Quitar favorita",
		Random:         "🎲 Aleatoria",
		All:            "📖 Todas",
		Favorites:      "⭐ Favoritas",
		FavoritesTitle: "⭐ Preguntas favoritas:",
		Select:         "🔢 Elegir pregunta",
		Language:       "🌐 Idioma",

		AddedToFavorites:     "⭐ Añadido a favoritos",
		RemovedFromFavorites: "❌ Eliminado de favoritos",
		RandomShown:          "🎲 Pregunta aleatoria mostrada",
		ErrorLoading:         "Error al cargar el contenido del libro.",
		NoFavorites:          "Aún no hay preguntas favoritas.",

		Help: "/book — pregunta actual\n/random — pregunta aleatoria\n/favorites — preguntas favoritas\n" +
			"/language — cambiar idioma\n/reload — recargar el libro\nEnvía un número para abrir esa pregunta.",
		ChooseLanguage:  "Elige un idioma:",
		LanguageChanged: "Idioma cambiado.",
		Reloaded:        "Libro recargado.",
		UnknownCommand:  "Comando desconocido. Usa /help.",
		NotFound:        "Pregunta no encontrada.",
		InternalError:   "Algo salió mal. Inténtalo más tarde.",
	},
	entities.LanguageFrench: {
		Title:          "Le Livre des Esprits",
		Question:       "Question",
		Previous:       "⬅️ Précédente",
		Next:           "Suivante ➡️",
		Favorite:       "⭐ Favori",
		Unfavorite:     "❌ Retirer des favoris",
		Random:         "🎲 Aléatoire",
		All:            "📖 Toutes",
		Favorites:      "⭐ Favoris",
		FavoritesTitle: "⭐ Questions favorites :",
		Select:         "🔢 Choisir une question",
		Language:       "🌐 Langue",

		AddedToFavorites:     "⭐ Ajouté aux favoris",
		RemovedFromFavorites: "❌ Supprimé des favoris",
		RandomShown:          "🎲 Question aléatoire affichée",
		ErrorLoading:         "Échec du chargement du contenu du livre.",
		NoFavorites:          "Aucune question favorite pour le moment.",

		Help: "/book — question actuelle\n/random — question aléatoire\n/favorites — questions favorites\n" +
			"/language — changer de langue\n/reload — recharger le livre\nEnvoyez un numéro pour ouvrir la question.",
		ChooseLanguage:  "Choisissez une langue :",
		LanguageChanged: "Langue modifiée.",
		Reloaded:        "Livre rechargé.",
		UnknownCommand:  "Commande inconnue. Utilisez /help.",
		NotFound:        "Question introuvable.",
		InternalError:   "Une erreur est survenue. Réessayez plus tard.",
	},
}
