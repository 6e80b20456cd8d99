// Package prompt builds the two generation prompts and cleans up the
// model output before it is persisted.
package prompt

import "fmt"

// SecondsPerMinute converts video duration into the minute count the
// prompts display.
const SecondsPerMinute = 60

// RewritePrompt builds the first-pass prompt that turns a raw caption
// transcript into clean, topic-organized prose.
func RewritePrompt(title, author string, durationSeconds int, transcript string) string {
	return fmt.Sprintf(`You are a professional content writer. Rewrite and condense the following YouTube video transcript into clean, well-organized content.

**Video Information:**
- Title: %s
- Author: %s
- Duration: %d minutes

**Raw Transcript:**
%s

---

## YOUR TASK

Rewrite this transcript into clean, readable content that:
1. Removes filler words, repetitions, and verbal tics (um, uh, like, you know)
2. Fixes grammar and sentence structure
3. Organizes content into logical sections with clear themes
4. Preserves the original speaker's voice and key messages
5. Maintains 80-90%% of the original wording where possible
6. Uses first-person perspective (I, my, me)

## OUTPUT REQUIREMENTS

- Output clean, flowing prose organized by topic
- Include section headers to organize major topics
- Keep the full depth of content - don't over-summarize
- Target length: 2,000-8,000 words depending on video length
- Do NOT add any new information not in the transcript
- Do NOT use HTML tags - output plain text with markdown headers (##)

## EXAMPLE OUTPUT FORMAT

## Introduction
The cleaned up content for the intro section...

## Topic 1: [Name]
The cleaned up content for this topic...

## Topic 2: [Name]
More cleaned content...

## Conclusion
Wrapping up the main points...

---

Now rewrite the transcript above:`,
		title, author, durationSeconds/SecondsPerMinute, transcript)
}

// NewsletterPrompt builds the second-pass prompt that turns the
// rewritten content into an email newsletter.
func NewsletterPrompt(title, author string, durationSeconds int, rewritten string) string {
	return fmt.Sprintf(`Generate an engaging email newsletter based on this YouTube video content:

**Video Information:**
- Title: %s
- Author: %s
- Duration: %d minutes

**Content (cleaned transcript):**
%s

---

## NEWSLETTER GENERATION RULES

**TARGET LENGTH:** 600-1,000 words (optimal for email newsletters)

**CONTENT RULES:**
- Write in first person (I, my, me) as if the video creator is sharing insights
- Use 90-95%% of key ideas/phrases from the content
- Personal, conversational tone that feels like a friend sharing knowledge
- Make it scannable with clear sections
- Include actionable takeaways

**STRUCTURE:**

1. **Subject Line Suggestion** - Compelling, curiosity-driven (under 50 chars)
2. **Opening Hook** (2-3 sentences) - Personal story or striking statement
3. **Main Insights** - The core value of the video, organized under ## subheaders
4. **Key Takeaways** - 3-5 bullet points of actionable advice
5. **Personal Reflection** - What this means for the reader
6. **Sign Off** - Warm, personal closing

**FORMATTING RULES:**
- Use plain text (NO HTML tags)
- Use ## markdown headers for section titles
- Leave a blank line before and after every header
- Use **bold** for emphasis sparingly
- Use bullet points with - characters, one blank line between bullets
- Separate sections with blank lines
- Keep paragraphs short (2-3 sentences max)

---

## EXAMPLE OUTPUT FORMAT:

**Subject Line:** The one habit that changed everything

---

Hey there,

I just watched something that completely shifted how I think about [topic].

Most people believe [common misconception]. But here's what I learned...

## The Main Insight

[Main insight paragraphs here]

## Here's What I'm Taking Away

- First actionable takeaway

- Second actionable takeaway

- Third actionable takeaway

This really made me reflect on [personal connection].

Until next time,
[Author name]

---

IMPORTANT: Output plain text only. No HTML. No markdown code blocks. Just the newsletter content.

Now generate the newsletter:`,
		title, author, durationSeconds/SecondsPerMinute, rewritten)
}
