package catalog

import "assetgen/internal/domain"

// Points of interest.
var buildingEntries = []entry{
	{domain.CategoryBuilding, "buildings/tavern.png", "Tavern", "Cozy wooden tavern building with timber frame walls, orange-brown thatched roof, a hanging wooden sign with a mug icon, warm yellow light glowing from windows, small chimney with smoke."},
	{domain.CategoryBuilding, "buildings/marketplace.png", "Marketplace", "Open-air marketplace with colorful striped canvas tent/awning (red and white stripes), wooden market stalls displaying goods - barrels, crates, hanging items. Busy trading atmosphere."},
	{domain.CategoryBuilding, "buildings/blacksmith.png", "Blacksmith", "Stone and wood blacksmith workshop with a glowing orange forge/furnace visible inside, an anvil outside, hanging tools, dark metal roof. Smoke rising from chimney."},
	{domain.CategoryBuilding, "buildings/library.png", "Library", "Large stone library building with tall arched windows, through which bookshelves are visible. Ornate entrance with columns, slate blue roof, scholarly and grand appearance."},
	{domain.CategoryBuilding, "buildings/temple.png", "Temple", "Majestic stone temple with tall spire/dome, golden ornamental details, grand stone steps leading to entrance, stained glass window, holy and serene atmosphere."},
	{domain.CategoryBuilding, "buildings/farm.png", "Farm", "Rustic farm building with red barn, wooden fence enclosure, visible crop rows or hay bales nearby, a small windmill or silo. Pastoral and peaceful."},
	{domain.CategoryBuilding, "buildings/mine_entrance.png", "Mine Entrance", "Dark cave mine entrance carved into rock face, supported by wooden timber beams, small rail track leading inside, mining cart, a lantern hanging at entrance."},
	{domain.CategoryBuilding, "buildings/fishing_hut.png", "Fishing Hut", "Small wooden hut on stilts at water's edge, thatched roof, fishing nets hanging to dry, a small dock/pier extending out, a fishing rod leaning against the wall."},
	{domain.CategoryBuilding, "buildings/watchtower.png", "Watchtower", "Tall stone watchtower/guard tower with a pointed roof, wooden observation platform at top with railing, narrow slit windows, a flag or banner at the peak."},
	{domain.CategoryBuilding, "buildings/guild_hall.png", "Guild Hall", "Large impressive guild hall building with grand wooden double doors, stone foundation, timber frame upper floors, colorful guild banner/flags hanging from facade, ornate roof."},
	{domain.CategoryBuilding, "buildings/inn.png", "Inn", "Two-story wooden inn building with a warm welcoming appearance, balcony on second floor, flower boxes in windows, cozy yellow-lit windows, a hanging sign with a bed icon."},
	{domain.CategoryBuilding, "buildings/fountain.png", "Fountain", "Ornamental stone fountain in a small plaza/square, circular basin with water flowing, decorative statue or pillar in center, stone tiles around base."},
	{domain.CategoryBuilding, "buildings/ruins.png", "Ruins", "Ancient crumbling stone ruins - broken walls, fallen pillars, overgrown with vines and moss, mysterious and abandoned atmosphere, weathered grey stone."},
	{domain.CategoryBuilding, "buildings/witch_hut.png", "Witch Hut", "Crooked mysterious witch's hut deep in the forest, tilted structure on chicken legs or stilts, glowing purple/green window, hanging herbs, cauldron outside, spooky but charming."},
	{domain.CategoryBuilding, "buildings/port.png", "Port", "Wooden harbor port with a long dock/pier extending over water, moored sailing ship, cargo crates and barrels on dock, rope coils, a small harbormaster's office building."},
}
