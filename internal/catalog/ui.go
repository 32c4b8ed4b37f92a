package catalog

import "assetgen/internal/domain"

var uiEntries = []entry{
	{domain.CategoryUIMinimap, "ui/minimap_icons/tavern.png", "Minimap Tavern", "Tiny mug/cup icon for tavern location marker."},
	{domain.CategoryUIMinimap, "ui/minimap_icons/market.png", "Minimap Market", "Tiny shopping bag/cart icon for market location."},
	{domain.CategoryUIMinimap, "ui/minimap_icons/blacksmith.png", "Minimap Blacksmith", "Tiny anvil/hammer icon for blacksmith location."},
	{domain.CategoryUIMinimap, "ui/minimap_icons/library.png", "Minimap Library", "Tiny book icon for library location."},
	{domain.CategoryUIMinimap, "ui/minimap_icons/temple.png", "Minimap Temple", "Tiny cross/star icon for temple location."},
	{domain.CategoryUIMinimap, "ui/minimap_icons/farm.png", "Minimap Farm", "Tiny wheat/plant icon for farm location."},
	{domain.CategoryUIMinimap, "ui/minimap_icons/mine.png", "Minimap Mine", "Tiny pickaxe icon for mine location."},
	{domain.CategoryUIMinimap, "ui/minimap_icons/port.png", "Minimap Port", "Tiny anchor/boat icon for port location."},

	{domain.CategoryUIEmotion, "ui/emotion_bubbles/happy.png", "Happy Emotion", "Happy smiling face emoji with closed eyes smile. Yellow, joyful."},
	{domain.CategoryUIEmotion, "ui/emotion_bubbles/sad.png", "Sad Emotion", "Sad face emoji with downturned mouth and teardrop. Blue, melancholy."},
	{domain.CategoryUIEmotion, "ui/emotion_bubbles/angry.png", "Angry Emotion", "Angry face emoji with furrowed brows and frown. Red, frustrated."},
	{domain.CategoryUIEmotion, "ui/emotion_bubbles/surprised.png", "Surprised Emotion", "Surprised face emoji with wide open mouth and eyes. Yellow, shocked."},
	{domain.CategoryUIEmotion, "ui/emotion_bubbles/scared.png", "Scared Emotion", "Fearful face emoji with wide eyes, trembling expression. Pale/blue, frightened."},
	{domain.CategoryUIEmotion, "ui/emotion_bubbles/love.png", "Love Emotion", "Love emoji with heart eyes or hearts floating around. Pink/red, affectionate."},
	{domain.CategoryUIEmotion, "ui/emotion_bubbles/thinking.png", "Thinking Emotion", "Thinking face emoji with hand on chin, raised eyebrow. Yellow, contemplative."},
	{domain.CategoryUIEmotion, "ui/emotion_bubbles/sleepy.png", "Sleepy Emotion", "Sleepy face emoji with closed eyes and Zzz letters floating. Purple/blue, drowsy."},

	{domain.CategoryUIBubble, "ui/speech_bubble.png", "Speech Bubble", "White speech bubble frame with rounded corners, thin dark outline, small triangular tail/pointer at bottom. Clean UI element."},

	{domain.CategoryUIAction, "ui/action_icons/gathering.png", "Gathering Action", "Small pickaxe/hand gathering icon. Resource collection activity indicator."},
	{domain.CategoryUIAction, "ui/action_icons/crafting.png", "Crafting Action", "Small hammer and anvil icon. Crafting/smithing activity indicator."},
	{domain.CategoryUIAction, "ui/action_icons/fighting.png", "Fighting Action", "Small crossed swords icon. Combat/battle activity indicator."},
	{domain.CategoryUIAction, "ui/action_icons/resting.png", "Resting Action", "Small crescent moon with Zzz icon. Sleeping/resting activity indicator."},
	{domain.CategoryUIAction, "ui/action_icons/trading.png", "Trading Action", "Small handshake or coin exchange icon. Trading activity indicator."},
	{domain.CategoryUIAction, "ui/action_icons/walking.png", "Walking Action", "Small footprints or walking person silhouette icon. Movement activity indicator."},
	{domain.CategoryUIAction, "ui/action_icons/eating.png", "Eating Action", "Small fork and knife or apple icon. Eating/consuming activity indicator."},
	{domain.CategoryUIAction, "ui/action_icons/exploring.png", "Exploring Action", "Small compass or magnifying glass icon. Exploration activity indicator."},
}
