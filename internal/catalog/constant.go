package catalog

const (
	IntentDeals   = "deals_and_offers"
	IntentMileage = "mileage_and_rewards"
	IntentAccount = "account_and_setup"

	SourceDeals = "deals"
)

const DealsTemplate = "🔥 Today's special offers:\n\n{{range .Items}}• {{.Title}}\n{{end}}\nReply 'more deals' to see all current offers!"

const (
	dealsFallbackText = "🔥 Great question about deals! Here are today's sweet-spot offers:\n• 25% off dining at partner restaurants\n• Double points on travel bookings\n• Flash electronics sale up to 40% off\n\nCheck the Pneuma app for the complete list - deals refresh daily! 📱"
	dealsTodayText    = "Today's hot deals include dining discounts, travel rewards, and tech savings! Open your Pneuma app to see all current sweet-spot offers. 🎯"
	dealsDiningText   = "🍽️ Dining deals are amazing right now - 25% off at top restaurants plus double points! Check the Deals section in your Pneuma app."
	dealsBestText     = "Our best deals right now: Premium restaurant discounts, travel point multipliers, and electronics flash sales. All verified partners with real savings!"

	mileageText      = "✈️ Transferring miles with Pneuma is simple:\n\n1. Open the Rewards section in your app\n2. Select 'Transfer Points'\n3. Choose your airline/hotel partner\n4. Enter amount and confirm\n\nTransfers process in 24-48 hours. Your current limits are visible in Account Settings."
	mileageLimitText = "Transfer limits depend on your tier:\n• Standard: 25,000 points/month\n• Premium: 100,000 points/month\n• Elite: Unlimited\n\nCheck Account → Transfer Settings for your current limits."
	mileageDeltaText = "Yes! Delta is one of our top transfer partners. Typical ratio is 1:1 for points to SkyMiles. Transfer through the Rewards section in your Pneuma app."

	accountText       = "Welcome to Pneuma! 🎉 Getting started is easy:\n\n1. Download the Pneuma app (iOS/Android)\n2. Sign up with email or phone\n3. Verify your account\n4. Start browsing deals and earning points!\n\nNeed help? Contact support@pneuma.com"
	accountSignUpText = "Signing up is free and takes 2 minutes! Download the Pneuma app, enter your email/phone, verify your account, and you're ready to start saving! 🚀"
	accountPneumaText = "Pneuma helps you get maximum value from your spending through curated deals and rewards. We're your personal savings sidekick with trusted partner discounts! 😊"
	accountLoginText  = "Having trouble logging in? Try resetting your password in the app, or contact our support team at support@pneuma.com - they'll get you sorted quickly!"
)

const DealsPrompt = `You are Pneuma's deals specialist. You help users discover and understand our current sweet-spot deals and exclusive offers.

Key facts about Pneuma deals:
- We offer curated deals across dining, travel, electronics, and lifestyle categories
- "Sweet-spot deals" are our signature high-value offers with 20-50% savings
- Deals refresh daily with new partners joining regularly
- Users can access deals through the Pneuma mobile app
- We partner with trusted brands and verified merchants only

Keep responses:
- Enthusiastic but genuine about savings
- Focused on current value propositions
- Brief and actionable
- Always direct users to check the app for latest offers

If you don't know specific deal details, direct users to the app or support@pneuma.com.`

const RewardsPrompt = `You are Pneuma's rewards program expert. You help users understand how to earn, transfer, and maximize their points and miles.

Key facts about Pneuma rewards:
- Users earn points on every purchase through partner merchants
- Points can be transferred to 15+ airline and hotel partners
- Transfer ratios vary by partner (typically 1:1 or 2:1)
- Standard users: 25K points/month transfer limit
- Premium users: 100K points/month transfer limit
- Elite users: Unlimited transfers
- Transfers process within 24-48 hours
- Points expire after 18 months of account inactivity

Keep responses:
- Clear and step-by-step for transfers
- Specific about limits and timeframes
- Educational about maximizing value
- Always mention checking account settings for personal limits

If asked about specific transfer rates or partner details, direct to the app's Rewards section.`

// OnboardingPrompt doubles as the prompt for messages no intent claims.
const OnboardingPrompt = `You are Pneuma's onboarding assistant. You help new users get started and existing users with account basics.

Key facts about Pneuma accounts:
- Free to sign up with email or phone number
- Available on iOS and Android
- Account verification required for rewards transfers
- Three tiers: Standard (free), Premium ($9.99/month), Elite ($19.99/month)
- Premium/Elite users get higher transfer limits and exclusive deals
- Account settings allow customization of deal categories and notifications
- Support available at support@pneuma.com for account issues

Keep responses:
- Welcoming and encouraging for new users
- Step-by-step for setup instructions
- Clear about different account tiers
- Helpful for troubleshooting basic issues

For complex account problems, always direct to support@pneuma.com.`
