package catalog

import "assetgen/internal/domain"

// Terrain tiles.
var tileEntries = []entry{
	{domain.CategoryTerrain, "tiles/grass_plains.png", "Grass Plains", "Lush green grassland tile with small grass blade details and subtle ground texture. Vibrant spring green color."},
	{domain.CategoryTerrain, "tiles/grass_flowers.png", "Grass with Flowers", "Green grass tile decorated with colorful small wildflowers - red, yellow, purple dots scattered naturally across the surface."},
	{domain.CategoryTerrain, "tiles/forest_light.png", "Light Forest", "Sparse forest tile with a few small deciduous trees on green grass, dappled sunlight visible on ground. Light green canopy."},
	{domain.CategoryTerrain, "tiles/forest_dense.png", "Dense Forest", "Thick dense forest tile with overlapping dark green tree canopies, almost no ground visible. Deep emerald green, ancient trees."},
	{domain.CategoryTerrain, "tiles/forest_autumn.png", "Autumn Forest", "Forest tile with beautiful autumn-colored trees - orange, red, golden yellow foliage. Fallen leaves on ground."},
	{domain.CategoryTerrain, "tiles/mountain_low.png", "Low Mountain", "Rocky low mountain/hill tile with grey-brown rocks, some grass patches, rough terrain. Not snow-capped."},
	{domain.CategoryTerrain, "tiles/mountain_high.png", "High Mountain", "Tall snow-capped mountain peak tile. White snow on top, grey rock below, imposing and majestic."},
	{domain.CategoryTerrain, "tiles/mountain_rocky.png", "Rocky Mountain", "Bare rocky mountain tile with exposed grey and brown stone, jagged edges, no vegetation. Raw stone texture."},
	{domain.CategoryTerrain, "tiles/water_shallow.png", "Shallow Water", "Clear shallow water tile with light blue color, visible sandy bottom, gentle small wave ripples, white sparkle highlights."},
	{domain.CategoryTerrain, "tiles/water_deep.png", "Deep Water", "Deep dark ocean water tile with dark navy blue color, subtle deep wave patterns. Very dark blue, no land visible."},
	{domain.CategoryTerrain, "tiles/water_river.png", "River", "Flowing river water tile with medium blue color, visible current flow lines, small white foam details on surface."},
	{domain.CategoryTerrain, "tiles/desert_sand.png", "Sand Desert", "Hot sandy desert tile with golden-tan sand, subtle wind-blown ripple patterns, warm dry feeling."},
	{domain.CategoryTerrain, "tiles/desert_oasis.png", "Desert Oasis", "Desert oasis tile with a small pool of clear blue water surrounded by sand, with one or two small palm trees and green vegetation."},
	{domain.CategoryTerrain, "tiles/swamp.png", "Swamp", "Murky swamp tile with dark greenish-brown muddy water, small cattails or reeds, mossy texture. Dark olive green and brown."},
	{domain.CategoryTerrain, "tiles/snow_field.png", "Snow Field", "Pristine white snow-covered flat tile with ice crystal sparkles, gentle blue shadows. Cool white and light blue."},
	{domain.CategoryTerrain, "tiles/snow_forest.png", "Snow Forest", "Snow-covered forest tile with evergreen pine trees dusted in white snow, frozen ground. Winter wonderland look."},
	{domain.CategoryTerrain, "tiles/farmland.png", "Farmland", "Plowed farmland tile with neat parallel furrow lines in rich brown soil, small green crop seedlings growing in rows."},
	{domain.CategoryTerrain, "tiles/road_dirt.png", "Dirt Road", "Earthy brown dirt road tile with worn path marks, small pebble details, lighter center where foot traffic goes."},
	{domain.CategoryTerrain, "tiles/road_stone.png", "Stone Road", "Cobblestone paved road tile with grey stone blocks arranged in a pattern, mortar lines between stones, well-maintained look."},
	{domain.CategoryTerrain, "tiles/beach.png", "Beach", "Sandy beach tile at the water's edge with golden sand, tiny seashell details, wet darker sand near water line."},
}
