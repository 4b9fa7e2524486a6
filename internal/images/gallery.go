// Package images porte l'arithmétique de la galerie d'un produit :
// quelle image est l'image principale, et comment l'index se déplace
// quand on ajoute ou retire une image.
package images

// NoMain signale qu'aucune image principale n'est désignée.
const NoMain = -1

// Append ajoute une URL en fin de galerie. La première image uploadée avec
// succès devient l'image principale si aucune n'est encore désignée.
func Append(gallery []string, main int, url string) ([]string, int) {
	gallery = append(gallery, url)
	if main == NoMain {
		main = 0
	}
	return gallery, main
}

// RemoveAt retire l'image à l'index i et ajuste l'index principal :
//   - i == main : la première image restante devient principale (NoMain si vide)
//   - i < main  : l'index principal recule d'un cran pour continuer à
//     désigner la même image
func RemoveAt(gallery []string, main int, i int) ([]string, int) {
	if i < 0 || i >= len(gallery) {
		return gallery, main
	}
	gallery = append(gallery[:i], gallery[i+1:]...)

	switch {
	case i == main:
		if len(gallery) > 0 {
			main = 0
		} else {
			main = NoMain
		}
	case i < main:
		main--
	}
	return gallery, main
}
