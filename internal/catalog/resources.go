package catalog

import "assetgen/internal/domain"

// Harvestable world objects.
var resourceEntries = []entry{
	{domain.CategoryResource, "resources/tree_oak.png", "Oak Tree", "Deciduous oak tree with rounded green canopy, brown trunk, full and leafy."},
	{domain.CategoryResource, "resources/tree_pine.png", "Pine Tree", "Tall conifer/pine tree with triangular dark green shape, brown trunk, pointed top."},
	{domain.CategoryResource, "resources/tree_palm.png", "Palm Tree", "Tropical palm tree with curved brown trunk and large green fronds/leaves at top."},
	{domain.CategoryResource, "resources/rock_small.png", "Small Rock", "Small grey stone rock with subtle crack lines. Simple round-ish boulder."},
	{domain.CategoryResource, "resources/rock_large.png", "Large Rock", "Larger grey-brown rock formation, more angular and imposing than small rock, with visible geological layers."},
	{domain.CategoryResource, "resources/bush_berry.png", "Berry Bush", "Green bush with bright red/purple berries visible among the leaves. Round shrub shape."},
	{domain.CategoryResource, "resources/mushroom.png", "Mushroom", "Cute red-capped mushroom with white spots (amanita-style), small white stem. Fantasy-looking."},
	{domain.CategoryResource, "resources/herb_green.png", "Green Herb", "Small green herb plant with distinctive medicinal-looking leaves, fresh and vibrant green."},
	{domain.CategoryResource, "resources/herb_rare.png", "Rare Herb", "Magical glowing rare herb with blue-purple leaves emitting a soft luminescent glow/sparkle effect. Mystical and valuable."},
	{domain.CategoryResource, "resources/flower_red.png", "Red Flower", "Beautiful red flower with green stem and leaves, blooming petals. Simple and recognizable."},
	{domain.CategoryResource, "resources/flower_blue.png", "Blue Flower", "Delicate blue flower with green stem and leaves, blooming petals. Cool blue color."},
	{domain.CategoryResource, "resources/wheat.png", "Wheat", "Golden wheat stalks bundled together, ripe grain heads drooping. Harvest-ready golden color."},
	{domain.CategoryResource, "resources/vegetable.png", "Vegetable", "Fresh garden vegetables - a few carrots and cabbages together, orange and green colors."},
	{domain.CategoryResource, "resources/fish_spot.png", "Fish Spot", "Water surface ripple/splash effect indicating fish activity below, concentric circles on blue water, small fish shadow visible."},
	{domain.CategoryResource, "resources/ore_iron.png", "Iron Ore", "Rock with visible iron ore veins, dark grey stone with reddish-brown metallic streaks/deposits."},
	{domain.CategoryResource, "resources/ore_gold.png", "Gold Ore", "Rock with gleaming gold veins, grey stone with bright golden metallic streaks that sparkle."},
	{domain.CategoryResource, "resources/ore_crystal.png", "Crystal Ore", "Rock with protruding crystal formations, translucent purple/blue crystals growing from grey stone, magical glow."},
}
