package campaign

import "time"

// Built-in sample data shown when the sample-data toggle is on and no real
// data exists yet. Never persisted.

const sampleArticle = `# 10 Proven Strategies for SaaS Growth in 2025

## Introduction

The SaaS landscape is evolving rapidly. Companies that adapt their growth strategies to current market dynamics will outperform competitors. This comprehensive guide explores the most effective approaches to scaling your SaaS business.

## 1. Product-Led Growth (PLG)

Product-led growth has become the dominant go-to-market strategy for modern SaaS companies. By letting your product drive acquisition, conversion, and expansion, you reduce customer acquisition costs while improving user satisfaction.

### Key Tactics:
- Offer a generous free tier or freemium model
- Implement in-app onboarding flows
- Use behavioral triggers for upgrade prompts
- Track product-qualified leads (PQLs)

## 2. Content Marketing at Scale

High-quality, SEO-optimized content remains one of the highest-ROI channels for SaaS companies. Focus on creating comprehensive resources that address your target audience's pain points.

### Best Practices:
- Publish long-form pillar content (2,000+ words)
- Create topic clusters around core keywords
- Leverage AI tools for content ideation and drafts
- Repurpose content across channels

## 3. Strategic Partnerships

Forming alliances with complementary SaaS products can unlock new distribution channels and add value for existing customers through integrations.

## 4. Customer Success as a Growth Engine

Investing in customer success reduces churn and drives expansion revenue through upsells, cross-sells, and referrals. Happy customers become your best advocates.

## 5. Data-Driven Decision Making

Leverage analytics and A/B testing across every touchpoint -- from landing pages to onboarding flows to pricing pages. Let data guide your growth experiments.

## Conclusion

Growth in 2025 requires a multi-faceted approach. By combining product-led strategies with strong content, partnerships, and customer success programs, SaaS companies can achieve sustainable, compounding growth.`

// SampleBrief is the form prefill used while the sample toggle is on and no
// live result exists.
var SampleBrief = struct {
	Topic       string
	Audience    string
	ContentType string
	Notes       string
}{
	Topic:       "SaaS Growth Strategies",
	Audience:    "SaaS founders and marketing leaders",
	ContentType: "Blog",
	Notes:       "Focus on product-led growth and content marketing",
}

// SampleContent returns the fixed sample content payload.
func SampleContent() *ContentResult {
	return &ContentResult{
		ArticleTitle:    "10 Proven Strategies for SaaS Growth in 2025",
		ArticleContent:  sampleArticle,
		MetaDescription: "Discover 10 proven SaaS growth strategies for 2025, including product-led growth, content marketing at scale, and data-driven optimization techniques.",
		ContentType:     "Blog",
		SEOScorecard: &Scorecard{
			SEOScore: 87,
			PrimaryKeywords: []PrimaryKeyword{
				{Keyword: "SaaS growth strategies", Volume: "3,400/mo", Density: "2.1%"},
				{Keyword: "SaaS growth 2025", Volume: "1,800/mo", Density: "1.5%"},
				{Keyword: "product-led growth", Volume: "5,200/mo", Density: "1.8%"},
			},
			SecondaryKeywords: []string{
				"customer acquisition cost", "content marketing SaaS",
				"SaaS partnerships", "customer success", "freemium model",
			},
			Recommendations: []string{
				"Add more internal links to related content pieces",
				"Include a comparison table of growth strategies",
				"Add author bio and schema markup for E-E-A-T",
				"Include case study examples with measurable results",
				"Optimize images with descriptive alt text",
			},
			CompetitorInsights: []string{
				"Top competitor articles average 2,500+ words on this topic",
				"HubSpot ranks #1 with a comprehensive guide format",
				"Most competing pages include downloadable templates or checklists",
				"Video content accompanies 60% of top-ranking pages",
			},
			SearchIntent: "Informational -- Users seeking actionable strategies to grow their SaaS business, primarily founders and marketing leads.",
		},
	}
}

// SampleCampaigns returns the fixed sample history list.
func SampleCampaigns() []Campaign {
	sample := SampleContent()
	return []Campaign{
		{
			ID:              "sample-1",
			Topic:           "SaaS Growth Strategies",
			Audience:        "SaaS founders and marketing leaders",
			ContentType:     "Blog",
			ArticleTitle:    sample.ArticleTitle,
			ArticleContent:  sample.ArticleContent,
			MetaDescription: sample.MetaDescription,
			SEOScore:        87,
			SEOScorecard:    sample.SEOScorecard,
			CreatedAt:       time.Date(2025, 2, 18, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:              "sample-2",
			Topic:           "Email Marketing Automation Best Practices",
			Audience:        "Digital marketers",
			ContentType:     "Blog",
			Notes:           "Focus on deliverability",
			ArticleTitle:    "The Ultimate Guide to Email Marketing Automation",
			ArticleContent:  "# The Ultimate Guide to Email Marketing Automation\n\nEmail marketing automation is the backbone of modern digital marketing. This guide covers workflows, segmentation, and deliverability best practices.",
			MetaDescription: "Learn how to set up powerful email marketing automation workflows that drive engagement and conversions.",
			SEOScore:        74,
			CreatedAt:       time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:              "sample-3",
			Topic:           "AI-Powered Customer Service",
			Audience:        "Support team managers",
			ContentType:     "Landing Page",
			ArticleTitle:    "Transform Customer Service with AI",
			ArticleContent:  "# Transform Customer Service with AI\n\nArtificial intelligence is revolutionizing how businesses handle customer inquiries. Reduce response times by 80% and boost satisfaction scores.",
			MetaDescription: "Discover how AI-powered customer service solutions can reduce response times by 80% and boost satisfaction scores.",
			SEOScore:        92,
			CreatedAt:       time.Date(2025, 2, 10, 8, 15, 0, 0, time.UTC),
		},
	}
}
