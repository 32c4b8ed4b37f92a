package catalog

import "assetgen/internal/domain"

// Inventory icons.
var itemEntries = []entry{
	{domain.CategoryItem, "items/sword.png", "Sword", "Steel sword with silver blade, brown leather-wrapped handle, cross-guard. Classic RPG weapon."},
	{domain.CategoryItem, "items/axe.png", "Battle Axe", "Iron battle axe with dark metal head, wooden handle. Heavy and powerful looking."},
	{domain.CategoryItem, "items/bow.png", "Bow", "Wooden longbow with taut string, elegant curved shape. Brown wood with white string."},
	{domain.CategoryItem, "items/staff.png", "Magic Staff", "Wooden magic staff with glowing crystal/orb at the top emitting blue-purple magical energy. Wizard weapon."},
	{domain.CategoryItem, "items/dagger.png", "Dagger", "Short dagger with thin pointed blade, small cross-guard, compact handle. Quick weapon."},
	{domain.CategoryItem, "items/shield.png", "Shield", "Round metal shield with an emblem/crest in center, rivets around edge. Defensive equipment."},
	{domain.CategoryItem, "items/helmet.png", "Helmet", "Iron knight's helmet with visor, protective and sturdy looking. Grey metal."},
	{domain.CategoryItem, "items/armor_leather.png", "Leather Armor", "Brown leather armor chest piece with stitching details, buckles. Light armor."},
	{domain.CategoryItem, "items/armor_plate.png", "Plate Armor", "Heavy steel plate armor chest piece, polished silver metal, sturdy protection. Heavy armor."},
	{domain.CategoryItem, "items/potion_red.png", "Health Potion", "Red health potion in a round glass bottle/flask with cork stopper. Bright red glowing liquid."},
	{domain.CategoryItem, "items/potion_blue.png", "Mana Potion", "Blue mana potion in a round glass bottle/flask with cork stopper. Bright blue glowing liquid."},
	{domain.CategoryItem, "items/bread.png", "Bread", "Freshly baked bread loaf, golden brown crust, warm and appetizing. Simple food item."},
	{domain.CategoryItem, "items/meat.png", "Cooked Meat", "Cooked meat on a bone (drumstick style), brown and appetizing. Hearty food."},
	{domain.CategoryItem, "items/fish_cooked.png", "Cooked Fish", "Grilled whole fish on a plate, golden-brown cooked fish. Food item."},
	{domain.CategoryItem, "items/wood.png", "Wood", "Bundle of wooden logs/planks tied together, brown wood grain visible. Crafting material."},
	{domain.CategoryItem, "items/stone.png", "Stone", "Grey stone block or chunk, rough hewn surface. Basic building material."},
	{domain.CategoryItem, "items/iron_ingot.png", "Iron Ingot", "Silver-grey iron ingot bar, metallic sheen, trapezoidal shape. Smelted metal."},
	{domain.CategoryItem, "items/gold_ingot.png", "Gold Ingot", "Shiny golden ingot bar, bright warm gold with sparkle. Precious metal."},
	{domain.CategoryItem, "items/crystal.png", "Crystal", "Translucent purple crystal gem, faceted and sparkling with magical energy."},
	{domain.CategoryItem, "items/leather.png", "Leather", "Rolled piece of brown leather hide, tanned and ready for crafting."},
	{domain.CategoryItem, "items/cloth.png", "Cloth", "Folded piece of white/cream cloth fabric, soft textile material."},
	{domain.CategoryItem, "items/gem_red.png", "Red Gem", "Brilliant cut red ruby gemstone, faceted and sparkling with deep red color."},
	{domain.CategoryItem, "items/gem_blue.png", "Blue Gem", "Brilliant cut blue sapphire gemstone, faceted and sparkling with deep blue color."},
	{domain.CategoryItem, "items/scroll.png", "Scroll", "Rolled parchment scroll with a red wax seal, aged paper color, arcane knowledge."},
	{domain.CategoryItem, "items/key.png", "Key", "Ornate golden key with decorative bow/handle, classic fantasy key design."},
	{domain.CategoryItem, "items/map.png", "Map", "Partially unrolled treasure/world map showing coastlines and an X mark, aged parchment."},
}
