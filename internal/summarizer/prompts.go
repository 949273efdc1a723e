package summarizer

// Prompt templates for the two pipeline phases. Both demand '-' bullet
// markers and bullets-only output so the result needs no post-parsing.

const mapPrompt = `Write a detailed summary of this text section in bullet points.
Use '-' for bullet points and answer only the bullet points.
Text:
%s

SUMMARY:`

const combinePrompt = `Combine these summaries into a final summary in bullet points.
Use '-' for bullet points and answer only the bullet points.
Text:
%s

FINAL SUMMARY:`
