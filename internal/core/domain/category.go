package domain

import "strings"

const CategoryOther = "other"

type categoryKeywords struct {
	category string
	keywords []string
}

// Checked in order; the first category with a matching keyword wins.
var modelCategoryKeywords = []categoryKeywords{
	{"text-generation", []string{"text-generation", "gpt", "llm", "language-model", "chat", "completion", "text2text", "summarization", "translation"}},
	{"image-generation", []string{"text-to-image", "image-generation", "stable-diffusion", "gan", "text2image", "diffusion", "dalle", "midjourney"}},
	{"image-to-text", []string{"image-to-text", "image-captioning", "ocr", "optical-character-recognition", "visual-question-answering", "image2text"}},
	{"text-to-speech", []string{"text-to-speech", "tts", "speech-synthesis", "voice-generation", "text2speech", "audio-generation"}},
	{"speech-to-text", []string{"speech-to-text", "speech-recognition", "transcription", "stt", "voice-recognition", "speech2text"}},
	{"audio-generation", []string{"audio-generation", "music-generation", "sound-generation", "audio-synthesis", "music-synthesis"}},
	{"computer-vision", []string{"object-detection", "image-classification", "face-detection", "semantic-segmentation", "pose-estimation", "image-recognition"}},
	{"video-generation", []string{"text-to-video", "video-generation", "animation", "motion-synthesis", "text2video"}},
	{"multimodal", []string{"multimodal", "vision-language", "audio-visual", "multi-task", "cross-modal"}},
}

// InferCategory assigns a coarse category from the record's description,
// tags, pipeline tag and name. Records matching nothing are "other".
func InferCategory(d *ModelDetail) string {
	parts := []string{d.Description, strings.Join(d.Tags, " "), d.Name}
	if d.PipelineTag != nil {
		parts = append(parts, *d.PipelineTag)
	}
	text := strings.ToLower(strings.Join(parts, " "))

	for _, ck := range modelCategoryKeywords {
		for _, kw := range ck.keywords {
			if strings.Contains(text, kw) {
				return ck.category
			}
		}
	}
	return CategoryOther
}
