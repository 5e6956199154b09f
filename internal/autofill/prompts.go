package autofill

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// probePrompt is the trivial generation request used to test model candidates.
const probePrompt = "Test"

const promptEnglish = `You are a professional resume writer. Generate a resume profile for a %s position.

Respond with ONLY a JSON object (no markdown, no code blocks, just the JSON):

{
  "aboutMe": "A compelling 2-3 sentence About Me section highlighting relevant experience and passion for the role",
  "technicalSkills": [
    {"skill": "Relevant technical skill 1", "percentage": 75},
    {"skill": "Relevant technical skill 2", "percentage": 80},
    {"skill": "Relevant technical skill 3", "percentage": 70},
    {"skill": "Relevant technical skill 4", "percentage": 85}
  ],
  "softSkills": [
    {"skill": "Communication", "percentage": 85},
    {"skill": "Teamwork", "percentage": 80},
    {"skill": "Problem Solving", "percentage": 75},
    {"skill": "Leadership", "percentage": 70}
  ],
  "strengths": "A 2-3 sentence paragraph describing key strengths for this role"
}

Make the skills specific and relevant to %s.`

const promptBM = `Anda adalah penulis resume profesional. Jana profil resume untuk jawatan %s.

Balas dengan HANYA objek JSON (tiada markdown, tiada blok kod, hanya JSON):

{
  "aboutMe": "2-3 ayat Tentang Saya yang menonjolkan pengalaman dan minat yang berkaitan",
  "technicalSkills": [
    {"skill": "Kemahiran teknikal berkaitan 1", "percentage": 75},
    {"skill": "Kemahiran teknikal berkaitan 2", "percentage": 80},
    {"skill": "Kemahiran teknikal berkaitan 3", "percentage": 70},
    {"skill": "Kemahiran teknikal berkaitan 4", "percentage": 85}
  ],
  "softSkills": [
    {"skill": "Komunikasi", "percentage": 85},
    {"skill": "Kerja Berpasukan", "percentage": 80},
    {"skill": "Penyelesaian Masalah", "percentage": 75},
    {"skill": "Kepimpinan", "percentage": 70}
  ],
  "strengths": "2-3 ayat perenggan yang menerangkan kekuatan utama untuk peranan ini"
}

Buat kemahiran khusus dan berkaitan dengan %s.`

// buildPrompt returns the generation instruction for a job title in the
// selected form language.
func buildPrompt(jobTitle, uiLanguage string) string {
	if uiLanguage == types.LanguageBM {
		return fmt.Sprintf(promptBM, jobTitle, jobTitle)
	}
	return fmt.Sprintf(promptEnglish, jobTitle, jobTitle)
}
