//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package langid

// seedTexts are small representative samples used to build the
// built-in n-gram profiles. The downloadable model replaces these with
// profiles trained on much larger corpora; the seeds keep language
// identification functional out of the box.
var seedTexts = map[string]string{
	"en": "the quick brown fox jumps over the lazy dog and then it runs " +
		"away into the woods because this is what foxes do when they have " +
		"had enough of people watching them all of the time with their " +
		"cameras and their notebooks full of observations about the world",
	"es": "el rápido zorro marrón salta sobre el perro perezoso y luego " +
		"corre hacia el bosque porque esto es lo que hacen los zorros " +
		"cuando ya han tenido suficiente de la gente que los observa todo " +
		"el tiempo con sus cámaras y sus cuadernos llenos de notas sobre el mundo",
	"de": "der schnelle braune fuchs springt über den faulen hund und läuft " +
		"dann in den wald davon weil das ist was füchse tun wenn sie genug " +
		"davon haben dass die leute sie die ganze zeit mit ihren kameras " +
		"und ihren notizbüchern voller beobachtungen über die welt beobachten",
	"fr": "le rapide renard brun saute par dessus le chien paresseux et " +
		"puis il court vers la forêt parce que c'est ce que font les " +
		"renards quand ils en ont assez des gens qui les observent tout le " +
		"temps avec leurs caméras et leurs carnets pleins de notes sur le monde",
	"it": "la rapida volpe marrone salta sopra il cane pigro e poi corre " +
		"verso il bosco perché questo è quello che fanno le volpi quando " +
		"ne hanno abbastanza delle persone che le osservano tutto il tempo " +
		"con le loro macchine fotografiche e i loro quaderni pieni di appunti sul mondo",
	"pt": "a rápida raposa marrom pula sobre o cachorro preguiçoso e depois " +
		"corre para a floresta porque é isso que as raposas fazem quando já " +
		"tiveram o suficiente das pessoas que as observam o tempo todo com " +
		"suas câmeras e seus cadernos cheios de anotações sobre o mundo",
	"nl": "de snelle bruine vos springt over de luie hond en rent dan weg " +
		"het bos in want dit is wat vossen doen wanneer ze er genoeg van " +
		"hebben dat mensen de hele tijd naar ze kijken met hun camera's en " +
		"hun notitieboekjes vol observaties over de wereld",
}
