package catalog

import "assetgen/internal/domain"

// Character sprites.
var characterEntries = []entry{
	{domain.CategoryCharacter, "characters/human_base.png", "Human Base", "Human RPG character with fair skin, brown hair, wearing simple brown tunic and pants. Average build, friendly and approachable."},
	{domain.CategoryCharacter, "characters/elf_base.png", "Elf Base", "Elegant elf character with pointed ears, light skin, long silver-blonde hair, wearing green forest clothing. Slender and graceful."},
	{domain.CategoryCharacter, "characters/dwarf_base.png", "Dwarf Base", "Stout dwarf character with thick brown beard, ruddy complexion, wearing heavy leather and metal vest. Short and stocky build."},
	{domain.CategoryCharacter, "characters/orc_base.png", "Orc Base", "Green-skinned orc character with small tusks, muscular build, wearing tribal leather armor with bone accessories. Strong and fierce."},
	{domain.CategoryCharacter, "characters/beastkin_base.png", "Beastkin Base", "Fox-like beastkin character with orange fur, pointy ears, bushy tail, wearing simple cloth outfit. Agile and alert expression."},
	{domain.CategoryCharacter, "characters/undead_base.png", "Undead Base", "Pale undead/skeleton character with ghostly blue-white skin, glowing blue eyes, tattered dark robes. Eerie but not scary, RPG-cute style."},
	{domain.CategoryCharacter, "characters/fairy_base.png", "Fairy Base", "Tiny fairy character with translucent iridescent wings, light purple skin, wearing flower-petal clothing, sparkling aura. Magical and delicate."},
	{domain.CategoryCharacter, "characters/dragonkin_base.png", "Dragonkin Base", "Dragon-humanoid character with red scales, small horns, reptilian eyes, tail, wearing metal and leather armor. Powerful and noble."},
}
